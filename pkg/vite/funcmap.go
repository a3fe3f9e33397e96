package vite

import (
	"context"
	"html/template"
)

// FuncMap returns template functions for html/template:
//
//	{{ vite "resources/js/app.js" }}
//	{{ vite_asset "resources/images/logo.svg" }}
//	{{ vite_react_refresh }}
//	{{ vite_manifest_hash }}
func (v *Vite) FuncMap() template.FuncMap {
	return template.FuncMap{
		"vite": func(entryPoints ...string) (template.HTML, error) {
			tags, err := v.Tags(context.Background(), entryPoints...)
			//nolint:gosec // Tags are rendered with escaped attribute values
			return template.HTML(tags), err
		},
		"vite_asset": func(asset string) (string, error) {
			return v.Asset(context.Background(), asset)
		},
		"vite_react_refresh": func() (template.HTML, error) {
			snippet, err := v.ReactRefresh(context.Background())
			//nolint:gosec // The preamble is a fixed template
			return template.HTML(snippet), err
		},
		"vite_manifest_hash": func() (string, error) {
			hash, _, err := v.ManifestHash(context.Background())
			return hash, err
		},
	}
}
