// Package config provides the vite.yaml configuration loader.
package config

import (
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/vitetag/internal/core/domain"
	"go.trai.ch/vitetag/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewLoader creates a new Loader reading through fsys and reporting warnings to logger.
func NewLoader(fsys ports.FileSystem, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, logger: logger}
}

// Load discovers vite.yaml from cwd upwards and returns the configuration.
// Without a config file, defaults rooted at cwd are returned.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	configPath, err := l.DiscoverConfigPath(cwd)
	if err != nil {
		return domain.Config{}, err
	}

	if configPath == "" {
		root, err := filepath.Abs(cwd)
		if err != nil {
			return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
		}
		return domain.Config{Root: root}.WithDefaults(), nil
	}

	return l.LoadFile(configPath)
}

// DiscoverConfigPath walks up from cwd and returns the path of the first vite.yaml.
// It returns an empty string when no file is found.
func (l *Loader) DiscoverConfigPath(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if l.fs.Exists(candidate) {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

// LoadFile reads the configuration from the file at configPath.
func (l *Loader) LoadFile(configPath string) (domain.Config, error) {
	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	var vitefile Vitefile
	if doc.Kind != 0 {
		if err := doc.Decode(&vitefile); err != nil {
			return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
		}
	}

	l.warnUnknownFields(configPath, &doc)

	cfg := domain.Config{
		Root:             resolveRoot(configPath, vitefile.Root),
		PublicDirectory:  vitefile.PublicDirectory,
		BuildDirectory:   vitefile.BuildDirectory,
		ManifestFilename: vitefile.ManifestFilename,
		Nonce:            vitefile.Nonce,
		BaseURL:          vitefile.BaseURL,
		EntryPoints:      slices.Clone(vitefile.EntryPoints),
	}

	if vitefile.HotFile != "" {
		cfg.HotFile = resolveAgainst(cfg.Root, vitefile.HotFile)
	}

	key, disabled, err := integrityKey(&vitefile.IntegrityKey)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}
	cfg.IntegrityKey = key
	cfg.DisableIntegrity = disabled

	return cfg.WithDefaults(), nil
}

// warnUnknownFields logs every top-level key that the configuration does not define.
func (l *Loader) warnUnknownFields(configPath string, doc *yaml.Node) {
	if len(doc.Content) == 0 {
		return
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		if _, ok := knownFields[key]; !ok {
			l.logger.Warn(fmt.Sprintf("ignoring unknown field %q in %s", key, filepath.Base(configPath)))
		}
	}
}

// integrityKey decodes integrityKey, which is either a field name or false.
func integrityKey(node *yaml.Node) (key string, disabled bool, err error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return "", false, nil
	}
	if node.Kind != yaml.ScalarNode {
		return "", false, zerr.Wrap(domain.ErrInvalidIntegrityKey, "invalid integrityKey")
	}

	switch node.Tag {
	case "!!str":
		return node.Value, false, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return "", false, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		if !b {
			return "", true, nil
		}
	}

	return "", false, zerr.With(zerr.Wrap(domain.ErrInvalidIntegrityKey, "invalid integrityKey"), "value", node.Value)
}

func resolveRoot(configPath, configuredRoot string) string {
	return resolveAgainst(filepath.Dir(configPath), configuredRoot)
}

func resolveAgainst(base, p string) string {
	if p == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}
