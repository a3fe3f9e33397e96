// Package urlgen prefixes public paths with the site base URL.
package urlgen

import (
	"strings"

	"go.trai.ch/vitetag/internal/core/ports"
)

var _ ports.URLGenerator = (*BaseURL)(nil)

// BaseURL joins paths onto a fixed base. An empty base yields root-relative URLs.
type BaseURL struct {
	base string
}

// New creates a BaseURL generator for base, e.g. "https://example.com/app".
func New(base string) *BaseURL {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &BaseURL{base: base}
}

// AssetPath returns the URL of a path relative to the public directory.
func (u *BaseURL) AssetPath(path string) string {
	return u.base + strings.TrimLeft(path, "/")
}

// Base returns the normalised base, always ending in a slash.
func (u *BaseURL) Base() string {
	return u.base
}
