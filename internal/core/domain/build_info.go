package domain

import "time"

// BuildInfo records the outcome of one per-target wheel build. It is stored
// in the build info store and consulted to skip rebuilds when nothing changed.
type BuildInfo struct {
	// PlatformKey identifies the target this record belongs to.
	PlatformKey string `json:"platform_key"`
	// InputHash is the combined hash of the source tree, the package spec
	// and the platform at the time of the build.
	InputHash string `json:"input_hash"`
	// WheelPath is the absolute path of the wheel that was written.
	WheelPath string `json:"wheel_path"`
	// BuiltAt is the time the wheel was written.
	BuiltAt time.Time `json:"built_at"`
}
