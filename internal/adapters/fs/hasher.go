package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gowheel/internal/core/domain"
	"go.trai.ch/gowheel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceHasher = (*Hasher)(nil)

// Hasher computes the combined input hash of a packaging run.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeInputHash hashes every file under root plus the extra values into a
// single hex digest. File paths are recorded relative to root so the digest
// is stable across checkouts. Output written to any of the skipDirs paths
// never changes the digest.
func (h *Hasher) ComputeInputHash(root string, extra []string, skipDirs ...string) (string, error) {
	hasher := xxhash.New()

	for _, v := range extra {
		_, _ = hasher.WriteString(v)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	for path := range h.walker.WalkFiles(root, skipDirs...) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		_, _ = hasher.WriteString(filepath.ToSlash(rel))
		_, _ = hasher.Write([]byte{0})

		fileHash, err := h.computeFileHash(path)
		if err != nil {
			return "", err
		}
		if err := binary.Write(hasher, binary.LittleEndian, fileHash); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// computeFileHash computes the XXHash of a file's content.
func (h *Hasher) computeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from walking the caller's source tree
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}
