package domain

const (
	// GowheelDirName is the name of the internal metadata directory, created
	// next to the source module's go.mod.
	GowheelDirName = ".gowheel"

	// ProjectFileName is the name of the optional project configuration file.
	ProjectFileName = "gowheel.yaml"

	// GoModFileName is the module descriptor a source directory must contain.
	GoModFileName = "go.mod"

	// DefaultOutputDir is the default directory wheels are written to.
	DefaultOutputDir = "dist"

	// DefaultVersion is the package version used when none is given.
	DefaultVersion = "0.1.0"

	// DefaultDescription is the package summary used when none is given.
	DefaultDescription = "Go binary packaged as Python wheel"

	// DefaultRequiresPython is the default Python version constraint.
	DefaultRequiresPython = ">=3.10"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// BinaryPerm is the permission recorded for bundled executables (rwxr-xr-x).
	BinaryPerm = 0o755
)

// DefaultStorePath returns the default path for the build info store,
// relative to the source module root.
func DefaultStorePath() string {
	return GowheelDirName
}
