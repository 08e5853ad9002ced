// Package domain contains the core types of the wheel packaging pipeline.
package domain

import "strings"

// Normalize maps a human-chosen package name to the normalized identifier
// used for both the wheel distribution name and the Python import name:
// lowercase, with "-" and "." replaced by "_".
func Normalize(name string) string {
	r := strings.NewReplacer("-", "_", ".", "_")
	return strings.ToLower(r.Replace(name))
}

// PackageSpec holds the attributes of one packaging run. It is constructed
// once per invocation from caller-supplied values plus defaults and is
// immutable thereafter.
type PackageSpec struct {
	// Name is the raw package name as chosen by the caller.
	Name string
	// Version is the package version string.
	Version string
	// EntryPoint is the console command name.
	EntryPoint string
	// Description becomes the METADATA Summary line.
	Description string
	// RequiresPython is the Python version constraint.
	RequiresPython string

	// Optional attributes, included in METADATA only when non-empty.
	Author      string
	AuthorEmail string
	License     string
	URL         string
	// Readme is the long-description body, not a path.
	Readme string

	// LDFlags are extra linker flags appended to the defaults.
	LDFlags string
	// SetVersionVar names a Go variable to set to Version via an -X define.
	SetVersionVar string
}

// DistName returns the normalized distribution name used in the wheel
// filename and the dist-info directory.
func (s *PackageSpec) DistName() string {
	return Normalize(s.Name)
}

// ImportName returns the normalized Python import name.
func (s *PackageSpec) ImportName() string {
	return Normalize(s.Name)
}

// BinaryName returns the name the bundled executable is stored under.
func (s *PackageSpec) BinaryName(windows bool) string {
	if windows {
		return s.EntryPoint + ".exe"
	}
	return s.EntryPoint
}

// DistInfoDir returns the name of the wheel metadata directory.
func (s *PackageSpec) DistInfoDir() string {
	return s.DistName() + "-" + s.Version + ".dist-info"
}

// WheelFilename returns the archive filename for the given platform tag.
// The pattern is part of the external contract consumed by installers.
func (s *PackageSpec) WheelFilename(platformTag string) string {
	return s.DistName() + "-" + s.Version + "-py3-none-" + platformTag + ".whl"
}
