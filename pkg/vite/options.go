package vite

import (
	iofs "io/fs"
	"slices"

	"go.trai.ch/vitetag/internal/core/ports"
)

// Option configures a Vite.
type Option func(*settings)

type settings struct {
	cfg    Config
	fsys   iofs.FS
	cache  *ManifestCache
	tracer ports.Tracer

	integrityKeySet bool
}

// WithRoot sets the project root. Defaults to the working directory.
func WithRoot(root string) Option {
	return func(s *settings) { s.cfg.Root = root }
}

// WithPublicDirectory sets the web root, relative to the project root. Defaults to "public".
func WithPublicDirectory(dir string) Option {
	return func(s *settings) { s.cfg.PublicDirectory = dir }
}

// WithBuildDirectory sets the default build directory inside the public directory. Defaults to "build".
func WithBuildDirectory(dir string) Option {
	return func(s *settings) { s.cfg.BuildDirectory = dir }
}

// WithManifestFilename sets the manifest path inside the build directory. Defaults to "manifest.json".
func WithManifestFilename(name string) Option {
	return func(s *settings) { s.cfg.ManifestFilename = name }
}

// WithHotFile sets the dev server marker file. Defaults to "<public>/hot".
func WithHotFile(path string) Option {
	return func(s *settings) { s.cfg.HotFile = path }
}

// WithNonce adds a nonce to preload tags and the React refresh preamble.
func WithNonce(nonce string) Option {
	return func(s *settings) { s.cfg.Nonce = nonce }
}

// WithIntegrityKey sets the manifest field read for subresource integrity. Defaults to "integrity".
func WithIntegrityKey(key string) Option {
	return func(s *settings) {
		s.cfg.IntegrityKey = key
		s.cfg.DisableIntegrity = false
		s.integrityKeySet = true
	}
}

// WithoutIntegrity disables integrity attributes.
func WithoutIntegrity() Option {
	return func(s *settings) { s.cfg.DisableIntegrity = true }
}

// WithBaseURL prefixes built asset URLs, e.g. with a CDN origin.
func WithBaseURL(base string) Option {
	return func(s *settings) { s.cfg.BaseURL = base }
}

// WithEntryPoints sets the entry points rendered when Tags is called without any.
func WithEntryPoints(entryPoints ...string) Option {
	return func(s *settings) { s.cfg.EntryPoints = slices.Clone(entryPoints) }
}

// WithFS reads the manifest and hot file from fsys instead of the local disk.
// Paths are resolved relative to the root of fsys.
func WithFS(fsys iofs.FS) Option {
	return func(s *settings) { s.fsys = fsys }
}

// WithManifestCache shares parsed manifests between Vite instances.
// The cache reads from the local disk, so it cannot be combined with WithFS.
func WithManifestCache(cache *ManifestCache) Option {
	return func(s *settings) { s.cache = cache }
}

// WithTracer reports resolver spans through tracer.
func WithTracer(tracer ports.Tracer) Option {
	return func(s *settings) { s.tracer = tracer }
}
