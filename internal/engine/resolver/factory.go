package resolver

import (
	"go.trai.ch/vitetag/internal/core/domain"
	"go.trai.ch/vitetag/internal/core/ports"
)

// Factory builds resolvers that share one file system, manifest store, hasher and tracer.
// The configuration and URL generator are supplied per resolver since they are only
// known once the project configuration has been loaded.
type Factory struct {
	fs        ports.FileSystem
	manifests ports.ManifestStore
	hasher    ports.Hasher
	tracer    ports.Tracer
}

// NewFactory creates a Factory.
func NewFactory(
	fsys ports.FileSystem,
	manifests ports.ManifestStore,
	hasher ports.Hasher,
	tracer ports.Tracer,
) *Factory {
	return &Factory{
		fs:        fsys,
		manifests: manifests,
		hasher:    hasher,
		tracer:    tracer,
	}
}

// New creates a Resolver for cfg.
func (f *Factory) New(cfg domain.Config, urls ports.URLGenerator) *Resolver {
	return NewResolver(cfg, f.fs, f.manifests, urls, f.hasher, f.tracer)
}
