package domain

import "strings"

// TagSet is the result of resolving a set of entry points.
type TagSet struct {
	// Hot is true when the tags point at the dev server.
	Hot bool
	// DevServer holds the dev server tags in request order. Only set when Hot.
	DevServer []string

	Preloads    []string
	Stylesheets []string
	Scripts     []string

	// PreloadedAssets maps each preloaded URL to its attributes without href.
	PreloadedAssets map[string]Attributes
}

// Tags returns every tag in output order.
func (t *TagSet) Tags() []string {
	if t.Hot {
		out := make([]string, len(t.DevServer))
		copy(out, t.DevServer)
		return out
	}

	out := make([]string, 0, len(t.Preloads)+len(t.Stylesheets)+len(t.Scripts))
	out = append(out, t.Preloads...)
	out = append(out, t.Stylesheets...)
	return append(out, t.Scripts...)
}

// String joins the tags with single spaces.
func (t *TagSet) String() string {
	return strings.Join(t.Tags(), " ")
}

// Len returns the number of tags.
func (t *TagSet) Len() int {
	if t.Hot {
		return len(t.DevServer)
	}
	return len(t.Preloads) + len(t.Stylesheets) + len(t.Scripts)
}
