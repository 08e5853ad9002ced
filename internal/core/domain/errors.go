package domain

import "go.trai.ch/zerr"

var (
	// ErrNotGoModule is returned when the source directory has no go.mod file.
	ErrNotGoModule = zerr.New("not a Go module, no go.mod file found")

	// ErrSourceDirNotFound is returned when the source directory does not exist.
	ErrSourceDirNotFound = zerr.New("source directory not found")

	// ErrReadmeNotFound is returned when a README file requested by the caller does not exist.
	ErrReadmeNotFound = zerr.New("README file not found")

	// ErrCompileFailed is returned when the Go compiler exits nonzero for a target.
	ErrCompileFailed = zerr.New("go compilation failed")

	// ErrBinaryReadFailed is returned when the compiled binary cannot be read back.
	ErrBinaryReadFailed = zerr.New("failed to read compiled binary")

	// ErrArchiveWriteFailed is returned when the wheel archive cannot be written.
	ErrArchiveWriteFailed = zerr.New("failed to write wheel archive")

	// ErrRecordGenerationFailed is returned when the RECORD manifest cannot be generated.
	ErrRecordGenerationFailed = zerr.New("failed to generate RECORD manifest")

	// ErrShimGenerationFailed is returned when the launcher shim source cannot be rendered.
	ErrShimGenerationFailed = zerr.New("failed to render launcher shim")

	// ErrNoWheelsBuilt is returned when a run produces no wheels at all.
	ErrNoWheelsBuilt = zerr.New("no wheels were built")

	// ErrOutputDirCreateFailed is returned when the output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrStoreCreateFailed is returned when the build info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build info store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrProjectFileReadFailed is returned when the project file cannot be read.
	ErrProjectFileReadFailed = zerr.New("failed to read project file")

	// ErrProjectFileParseFailed is returned when the project file cannot be parsed.
	ErrProjectFileParseFailed = zerr.New("failed to parse project file")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrWatchFailed is returned when the source watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch source directory")
)
