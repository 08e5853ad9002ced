package domain

// Platform describes one build target: the GOOS/GOARCH pair handed to the
// compiler and the wheel platform tag embedded in output filenames.
type Platform struct {
	Key  string
	GOOS string
	Arch string
	Tag  string
}

// IsWindows reports whether the target is a Windows platform.
func (p Platform) IsWindows() bool {
	return p.GOOS == "windows"
}

// platformTable is the fixed, ordered set of supported targets.
// The order here is the order targets are built in a default run.
var platformTable = []Platform{
	{Key: "linux-amd64", GOOS: "linux", Arch: "amd64", Tag: "manylinux_2_17_x86_64"},
	{Key: "linux-arm64", GOOS: "linux", Arch: "arm64", Tag: "manylinux_2_17_aarch64"},
	{Key: "linux-amd64-musl", GOOS: "linux", Arch: "amd64", Tag: "musllinux_1_2_x86_64"},
	{Key: "linux-arm64-musl", GOOS: "linux", Arch: "arm64", Tag: "musllinux_1_2_aarch64"},
	{Key: "darwin-amd64", GOOS: "darwin", Arch: "amd64", Tag: "macosx_10_9_x86_64"},
	{Key: "darwin-arm64", GOOS: "darwin", Arch: "arm64", Tag: "macosx_11_0_arm64"},
	{Key: "windows-amd64", GOOS: "windows", Arch: "amd64", Tag: "win_amd64"},
	{Key: "windows-arm64", GOOS: "windows", Arch: "arm64", Tag: "win_arm64"},
}

// LookupPlatform returns the platform descriptor for the given key.
// The second return value is false for keys not in the table.
func LookupPlatform(key string) (Platform, bool) {
	for _, p := range platformTable {
		if p.Key == key {
			return p, true
		}
	}
	return Platform{}, false
}

// Platforms returns all supported platform descriptors in table order.
func Platforms() []Platform {
	out := make([]Platform, len(platformTable))
	copy(out, platformTable)
	return out
}

// DefaultPlatformKeys returns the keys of all supported platforms in table order.
func DefaultPlatformKeys() []string {
	keys := make([]string, len(platformTable))
	for i, p := range platformTable {
		keys[i] = p.Key
	}
	return keys
}
