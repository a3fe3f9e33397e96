package ports

import (
	"context"

	"go.trai.ch/vitetag/internal/core/domain"
)

// ManifestStore loads parsed manifests by file path.
//
//go:generate mockgen -source=manifest_store.go -destination=mocks/mock_manifest_store.go -package=mocks
type ManifestStore interface {
	// Load returns the manifest stored at path, parsing it on first use.
	// A missing file yields domain.ErrManifestNotFound.
	Load(ctx context.Context, path string) (*domain.Manifest, error)
}
