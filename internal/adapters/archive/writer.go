// Package archive implements the wheel archive writer on top of archive/zip.
package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/gowheel/internal/core/domain"
	"go.trai.ch/gowheel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArchiveWriter = (*Writer)(nil)

// Writer implements ports.ArchiveWriter using a deflate-compressed zip.
type Writer struct{}

// NewWriter creates a new archive Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write stores the file set at outputDir/filename in insertion order.
// Entries under a bin/ segment are stored with Unix mode 0755 so extraction
// tools on the install host can mark the binary executable; everything else
// gets plain file permissions.
func (w *Writer) Write(files *domain.FileSet, outputDir, filename string) (string, error) {
	if err := os.MkdirAll(outputDir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error()), "dir", outputDir)
	}

	path := filepath.Join(outputDir, filename)
	//nolint:gosec // Path is constructed from the caller's output directory
	f, err := os.Create(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", path)
	}

	if err := w.writeEntries(f, files); err != nil {
		_ = f.Close()
		return "", zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", path)
	}

	if err := f.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", path)
	}

	return path, nil
}

func (w *Writer) writeEntries(f *os.File, files *domain.FileSet) error {
	zw := zip.NewWriter(f)

	for _, name := range files.Paths() {
		content, _ := files.Get(name)

		hdr := &zip.FileHeader{
			Name:   name,
			Method: zip.Deflate,
		}
		if hasBinSegment(name) {
			hdr.SetMode(domain.BinaryPerm)
		} else {
			hdr.SetMode(domain.FilePerm)
		}

		entry, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}
		if _, err := entry.Write(content); err != nil {
			return err
		}
	}

	return zw.Close()
}

// hasBinSegment reports whether the archive path contains a bin/ directory
// segment.
func hasBinSegment(name string) bool {
	return strings.HasPrefix(name, "bin/") || strings.Contains(name, "/bin/")
}
