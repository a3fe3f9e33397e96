package config

import "gopkg.in/yaml.v3"

// Vitefile represents the structure of the vite.yaml configuration file.
type Vitefile struct {
	Root             string    `yaml:"root"`
	PublicDirectory  string    `yaml:"publicDirectory"`
	BuildDirectory   string    `yaml:"buildDirectory"`
	ManifestFilename string    `yaml:"manifestFilename"`
	HotFile          string    `yaml:"hotFile"`
	IntegrityKey     yaml.Node `yaml:"integrityKey"`
	Nonce            string    `yaml:"nonce"`
	BaseURL          string    `yaml:"baseUrl"`
	EntryPoints      []string  `yaml:"entryPoints"`
}

var knownFields = map[string]struct{}{
	"root":             {},
	"publicDirectory":  {},
	"buildDirectory":   {},
	"manifestFilename": {},
	"hotFile":          {},
	"integrityKey":     {},
	"nonce":            {},
	"baseUrl":          {},
	"entryPoints":      {},
}
