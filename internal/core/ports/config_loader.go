package ports

// ProjectConfig holds the optional defaults read from a gowheel.yaml project
// file. Zero-valued fields mean "not set"; the caller decides precedence.
type ProjectConfig struct {
	Name           string
	Version        string
	EntryPoint     string
	Description    string
	RequiresPython string
	Author         string
	AuthorEmail    string
	License        string
	URL            string
	Readme         string
	Platforms      []string
	LDFlags        string
	SetVersionVar  string
}

// ConfigLoader defines the interface for loading the optional project file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project file from the given source module directory.
	// A missing project file is not an error and returns an empty config.
	Load(sourceDir string) (*ProjectConfig, error)
}
