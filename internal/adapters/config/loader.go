// Package config provides the configuration loader for satchel.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"go.trai.ch/satchel/internal/core/domain"
	"go.trai.ch/satchel/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load reads the settings file at path, or satchel.yaml when path is empty.
// A missing file is an error only when required is set.
func (l *Loader) Load(path string, required bool) (domain.Settings, error) {
	if path == "" {
		path = domain.ConfigFileName
	}

	if _, err := l.FS.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.Settings{}, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
		}
		if required {
			return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "cannot load settings"), "path", path)
		}
		l.Logger.Debug(fmt.Sprintf("no %s found, using defaults", path))
		return domain.Settings{}, nil
	}

	var file Satchelfile
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return domain.Settings{}, err
	}

	if file.Version != "" && file.Version != CurrentVersion {
		err := zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigVersion, "cannot load settings"), "version", file.Version)
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	l.Logger.Debug(fmt.Sprintf("loaded settings from %s", path))

	return domain.Settings{
		Amount:      file.Amount,
		Order:       domain.SortOrder(file.Order),
		Format:      domain.Format(file.Format),
		Parallelism: file.Parallelism,
	}, nil
}

// readAndUnmarshalYAML decodes the file strictly. An empty file decodes to
// the zero value.
func (l *Loader) readAndUnmarshalYAML(path string, target *Satchelfile) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	return nil
}
