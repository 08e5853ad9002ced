package ports

import "go.trai.ch/gowheel/internal/core/domain"

// ArchiveWriter defines the interface for writing a populated file set as a
// wheel archive on disk.
//
//go:generate mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type ArchiveWriter interface {
	// Write stores the file set as a deflate-compressed zip at
	// outputDir/filename and returns the full path of the written archive.
	// Entries under a bin/ path segment are stored with mode 0755.
	Write(files *domain.FileSet, outputDir, filename string) (string, error)
}
