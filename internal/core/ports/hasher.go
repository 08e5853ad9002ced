package ports

// SourceHasher defines the interface for computing the combined input hash
// of a packaging run.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type SourceHasher interface {
	// ComputeInputHash hashes every file under root plus the given extra
	// values (package spec fields, platform key) into a single hex digest.
	// Directories at the given absolute skipDirs paths are left out, on top
	// of the always-ignored metadata directories.
	ComputeInputHash(root string, extra []string, skipDirs ...string) (string, error)
}
