package wheel

import (
	"encoding/csv"
	"strconv"
	"strings"

	"go.trai.ch/gowheel/internal/core/domain"
	"go.trai.ch/zerr"
)

// GenerateRecord renders the RECORD integrity manifest over the file set in
// insertion order. Every entry gets a (path, digest, length) row except the
// manifest itself, identified by recordPath, whose digest and length are
// empty. The manifest never hashes itself; the caller splices the returned
// bytes into the reserved slot afterwards.
func GenerateRecord(files *domain.FileSet, recordPath string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.UseCRLF = true

	for _, path := range files.Paths() {
		if path == recordPath {
			if err := w.Write([]string{path, "", ""}); err != nil {
				return "", zerr.Wrap(err, domain.ErrRecordGenerationFailed.Error())
			}
			continue
		}

		content, _ := files.Get(path)
		row := []string{path, RecordDigest(content), strconv.Itoa(len(content))}
		if err := w.Write(row); err != nil {
			return "", zerr.Wrap(err, domain.ErrRecordGenerationFailed.Error())
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", zerr.Wrap(err, domain.ErrRecordGenerationFailed.Error())
	}

	return sb.String(), nil
}
