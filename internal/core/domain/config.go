package domain

import (
	"path"
	"path/filepath"
	"slices"
)

// Config is the immutable resolver configuration.
// Zero-valued fields fall back to their defaults through WithDefaults.
type Config struct {
	// Root is the project root directory.
	Root string
	// PublicDirectory is the web root, relative to Root unless absolute.
	PublicDirectory string
	// BuildDirectory is the public subdirectory that holds compiled assets.
	BuildDirectory string
	// ManifestFilename is the manifest path inside the build directory.
	ManifestFilename string
	// HotFile is the dev server marker file. Defaults to <Root>/<PublicDirectory>/hot.
	HotFile string
	// IntegrityKey is the manifest field read for subresource-integrity hashes.
	IntegrityKey string
	// DisableIntegrity turns off integrity handling entirely.
	DisableIntegrity bool
	// Nonce is added to preload tags and the refresh snippet. Empty means unset.
	Nonce string
	// BaseURL prefixes built asset paths.
	BaseURL string
	// EntryPoints are used when tags are requested without explicit entry points.
	EntryPoints []string
}

// WithDefaults returns a copy of c with every unset field defaulted.
func (c Config) WithDefaults() Config {
	if c.Root == "" {
		c.Root = "."
	}
	if c.PublicDirectory == "" {
		c.PublicDirectory = DefaultPublicDirectory
	}
	if c.BuildDirectory == "" {
		c.BuildDirectory = DefaultBuildDirectory
	}
	if c.ManifestFilename == "" {
		c.ManifestFilename = DefaultManifestFilename
	}
	if c.HotFile == "" {
		c.HotFile = filepath.Join(c.PublicPath(), HotFileName)
	}
	if c.IntegrityKey == "" {
		c.IntegrityKey = DefaultIntegrityKey
	}
	c.EntryPoints = slices.Clone(c.EntryPoints)
	return c
}

// IntegrityEnabled reports whether integrity attributes are resolved at all.
func (c Config) IntegrityEnabled() bool {
	return !c.DisableIntegrity
}

// PublicPath returns the absolute-or-root-relative public directory.
func (c Config) PublicPath() string {
	if filepath.IsAbs(c.PublicDirectory) {
		return c.PublicDirectory
	}
	return filepath.Join(c.Root, c.PublicDirectory)
}

// ManifestPath returns the manifest location for the given build directory.
func (c Config) ManifestPath(buildDirectory string) string {
	return filepath.Join(c.PublicPath(), buildDirectory, c.ManifestFilename)
}

// BuildAssetPath joins a build directory and a manifest file into a URL path.
func BuildAssetPath(buildDirectory, file string) string {
	return path.Join(buildDirectory, file)
}
