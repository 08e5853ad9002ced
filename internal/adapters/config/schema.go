package config

// Projectfile represents the structure of the gowheel.yaml configuration file.
// Every field is optional; CLI flags take precedence over file values.
type Projectfile struct {
	Name           string   `yaml:"name"`
	Version        string   `yaml:"version"`
	EntryPoint     string   `yaml:"entryPoint"`
	Description    string   `yaml:"description"`
	RequiresPython string   `yaml:"requiresPython"`
	Author         string   `yaml:"author"`
	AuthorEmail    string   `yaml:"authorEmail"`
	License        string   `yaml:"license"`
	URL            string   `yaml:"url"`
	Readme         string   `yaml:"readme"`
	Platforms      []string `yaml:"platforms"`
	LDFlags        string   `yaml:"ldflags"`
	SetVersionVar  string   `yaml:"setVersionVar"`
}
