// Package manifest provides the process-wide store of parsed Vite manifests.
package manifest

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/vitetag/internal/adapters/fs"
	"go.trai.ch/vitetag/internal/core/domain"
	"go.trai.ch/vitetag/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.ManifestStore = (*Cache)(nil)

// Cache holds parsed manifests keyed by file path.
//
// Entries are written once and never invalidated: a rebuilt manifest is only
// picked up by a new Cache. Concurrent first loads of the same path share a
// single read and parse.
type Cache struct {
	fs    ports.FileSystem
	group singleflight.Group

	mu        sync.RWMutex
	manifests map[string]*domain.Manifest
}

// NewCache creates an empty Cache reading through fsys.
func NewCache(fsys ports.FileSystem) *Cache {
	return &Cache{
		fs:        fsys,
		manifests: make(map[string]*domain.Manifest),
	}
}

// Load returns the manifest at path, reading and parsing it on first use.
// Failures are not cached.
func (c *Cache) Load(ctx context.Context, path string) (*domain.Manifest, error) {
	if m, ok := c.get(path); ok {
		return m, nil
	}

	ch := c.group.DoChan(path, func() (any, error) {
		if m, ok := c.get(path); ok {
			return m, nil
		}

		m, err := c.read(path)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.manifests[path] = m
		c.mu.Unlock()
		return m, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.Manifest), nil //nolint:forcetypeassert // Only manifests are stored
	}
}

// Len returns the number of cached manifests.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.manifests)
}

func (c *Cache) get(path string) (*domain.Manifest, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.manifests[path]
	return m, ok
}

func (c *Cache) read(path string) (*domain.Manifest, error) {
	if !c.fs.Exists(path) {
		return nil, notFound(path)
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		if fs.IsNotExist(err) {
			return nil, notFound(path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	m, err := domain.ParseManifest(data)
	if err != nil {
		// Unparseable manifests are reported like missing ones.
		return nil, errors.Join(
			domain.ErrManifestNotFound,
			zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path),
		)
	}
	return m, nil
}

func notFound(path string) error {
	return zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "vite manifest missing"), "path", path)
}
