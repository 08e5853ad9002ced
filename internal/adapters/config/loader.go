// Package config provides the optional project file loader for gowheel.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/gowheel/internal/core/domain"
	"go.trai.ch/gowheel/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file next to the source
// module's go.mod.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads gowheel.yaml from the source module directory. A missing file
// is not an error; the returned config is simply empty.
func (l *Loader) Load(sourceDir string) (*ports.ProjectConfig, error) {
	path := filepath.Join(sourceDir, domain.ProjectFileName)

	//nolint:gosec // Path is constructed from the caller's source directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ports.ProjectConfig{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectFileReadFailed.Error()), "path", path)
	}

	var file Projectfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectFileParseFailed.Error()), "path", path)
	}

	return &ports.ProjectConfig{
		Name:           file.Name,
		Version:        file.Version,
		EntryPoint:     file.EntryPoint,
		Description:    file.Description,
		RequiresPython: file.RequiresPython,
		Author:         file.Author,
		AuthorEmail:    file.AuthorEmail,
		License:        file.License,
		URL:            file.URL,
		Readme:         file.Readme,
		Platforms:      file.Platforms,
		LDFlags:        file.LDFlags,
		SetVersionVar:  file.SetVersionVar,
	}, nil
}
