// Package vite renders the HTML tags that load Vite entry points in server-side templates.
//
// In development, when the dev server has written its hot file, tags point at the dev
// server. Otherwise they are resolved through the build manifest, together with
// preload hints for imported chunks and stylesheets.
package vite

import (
	"context"
	"os"

	"go.trai.ch/vitetag/internal/adapters/fs"
	"go.trai.ch/vitetag/internal/adapters/manifest"
	"go.trai.ch/vitetag/internal/adapters/telemetry"
	"go.trai.ch/vitetag/internal/adapters/urlgen"
	"go.trai.ch/vitetag/internal/core/domain"
	"go.trai.ch/vitetag/internal/core/ports"
	"go.trai.ch/vitetag/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Config is the effective resolver configuration.
type Config = domain.Config

var (
	// ErrManifestNotFound is returned when the build manifest is missing or unreadable as JSON.
	ErrManifestNotFound = domain.ErrManifestNotFound
	// ErrChunkNotFound is returned when an entry point or import is absent from the manifest.
	ErrChunkNotFound = domain.ErrChunkNotFound
	// ErrInvalidIntegrityKey is returned when the integrity key is empty.
	ErrInvalidIntegrityKey = domain.ErrInvalidIntegrityKey
	// ErrIncompatibleOptions is returned when WithFS and WithManifestCache are combined.
	ErrIncompatibleOptions = zerr.New("incompatible vite options")
)

// ManifestCache holds parsed manifests. It is safe for concurrent use.
type ManifestCache struct {
	fs    ports.FileSystem
	cache *manifest.Cache
}

// NewManifestCache creates a cache reading manifests from the local disk.
func NewManifestCache() *ManifestCache {
	return newManifestCache(fs.NewOSFileSystem())
}

func newManifestCache(fsys ports.FileSystem) *ManifestCache {
	return &ManifestCache{fs: fsys, cache: manifest.NewCache(fsys)}
}

// Len returns the number of cached manifests.
func (c *ManifestCache) Len() int {
	return c.cache.Len()
}

// Vite resolves entry points for one project configuration.
type Vite struct {
	resolver *resolver.Resolver
}

// New creates a Vite. Unset options take their defaults.
func New(opts ...Option) (*Vite, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	if s.cfg.Root == "" && s.fsys == nil {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to resolve working directory")
		}
		s.cfg.Root = wd
	}
	if s.fsys != nil && s.cache != nil {
		return nil, zerr.Wrap(ErrIncompatibleOptions, "a shared manifest cache reads from the local disk and cannot be used with WithFS")
	}
	if s.integrityKeySet && !s.cfg.DisableIntegrity && s.cfg.IntegrityKey == "" {
		return nil, zerr.Wrap(domain.ErrInvalidIntegrityKey, "integrity key must not be empty")
	}

	var fsys ports.FileSystem
	if s.fsys != nil {
		fsys = fs.NewFSFileSystem(s.fsys)
	} else {
		fsys = fs.NewOSFileSystem()
	}

	if s.cache == nil {
		s.cache = newManifestCache(fsys)
	}
	if s.tracer == nil {
		s.tracer = telemetry.NewNoOpTracer()
	}

	cfg := s.cfg.WithDefaults()
	r := resolver.NewResolver(cfg, fsys, s.cache.cache, urlgen.New(cfg.BaseURL), fs.NewHasher(), s.tracer)
	return &Vite{resolver: r}, nil
}

// Tags renders the tags for entryPoints from the default build directory.
// Without entry points the configured defaults are used.
func (v *Vite) Tags(ctx context.Context, entryPoints ...string) (string, error) {
	return v.TagsFor(ctx, "", entryPoints...)
}

// TagsFor renders the tags for entryPoints from buildDirectory.
func (v *Vite) TagsFor(ctx context.Context, buildDirectory string, entryPoints ...string) (string, error) {
	if len(entryPoints) == 0 {
		entryPoints = v.resolver.Config().EntryPoints
	}
	return v.resolver.Tags(ctx, entryPoints, buildDirectory)
}

// PreloadedAssets resolves entryPoints and returns the attributes of every preload hint
// keyed by URL, e.g. to emit Link response headers.
func (v *Vite) PreloadedAssets(ctx context.Context, entryPoints ...string) (map[string]string, error) {
	if len(entryPoints) == 0 {
		entryPoints = v.resolver.Config().EntryPoints
	}
	set, err := v.resolver.Resolve(ctx, entryPoints, "")
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(set.PreloadedAssets))
	for url, attrs := range set.PreloadedAssets {
		out[url] = attrs.String()
	}
	return out, nil
}

// Asset returns the URL of a single asset from the default build directory.
func (v *Vite) Asset(ctx context.Context, asset string) (string, error) {
	return v.resolver.Asset(ctx, asset, "")
}

// AssetFor returns the URL of a single asset from buildDirectory.
func (v *Vite) AssetFor(ctx context.Context, buildDirectory, asset string) (string, error) {
	return v.resolver.Asset(ctx, asset, buildDirectory)
}

// ManifestHash returns a content hash of the manifest.
// ok is false while the dev server runs or when no manifest exists.
func (v *Vite) ManifestHash(ctx context.Context) (hash string, ok bool, err error) {
	return v.resolver.ManifestHash(ctx, "")
}

// ReactRefresh returns the React refresh preamble, or "" when the dev server is not running.
func (v *Vite) ReactRefresh(ctx context.Context) (string, error) {
	return v.resolver.ReactRefresh(ctx)
}

// IsRunningHot reports whether the dev server is running.
func (v *Vite) IsRunningHot() bool {
	return v.resolver.IsRunningHot()
}

// Config returns the effective configuration.
func (v *Vite) Config() Config {
	return v.resolver.Config()
}
