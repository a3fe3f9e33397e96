package domain

// PreloadEntry is a resource hint collected while walking a manifest.
type PreloadEntry struct {
	// Src identifies the asset: the chunk's src for entry points, the manifest key otherwise.
	// It is empty for stylesheets without a manifest record.
	Src string
	// URL is the resolved public URL of the asset.
	URL string
	// Chunk is the owning record. It may be nil for stylesheets without a manifest record.
	Chunk *Chunk
	// Manifest is the manifest the entry was resolved against.
	Manifest *Manifest
}

// IsStylesheet reports whether the entry resolves to a stylesheet.
func (p PreloadEntry) IsStylesheet() bool {
	return IsStylesheetPath(p.URL)
}
