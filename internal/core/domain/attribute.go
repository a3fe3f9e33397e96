package domain

import (
	"html"
	"strconv"
	"strings"
)

// AttrKind describes how an attribute is rendered.
type AttrKind uint8

const (
	// AttrValue renders as name="value".
	AttrValue AttrKind = iota
	// AttrFlag renders as the bare name.
	AttrFlag
	// AttrOmitted is never rendered.
	AttrOmitted
)

// Attr is a single HTML attribute.
type Attr struct {
	Name  string
	Value string
	Kind  AttrKind
}

// StringAttr returns a valued attribute. Empty strings are rendered.
func StringAttr(name, value string) Attr {
	return Attr{Name: name, Value: value, Kind: AttrValue}
}

// IntAttr returns a numeric attribute. Zero is rendered.
func IntAttr(name string, value int) Attr {
	return Attr{Name: name, Value: strconv.Itoa(value), Kind: AttrValue}
}

// FlagAttr returns a standalone attribute such as async or defer.
func FlagAttr(name string) Attr {
	return Attr{Name: name, Kind: AttrFlag}
}

// OmittedAttr returns a placeholder that keeps the attribute position but is never rendered.
func OmittedAttr(name string) Attr {
	return Attr{Name: name, Kind: AttrOmitted}
}

// OptionalAttr returns a valued attribute when ok is true and an omitted one otherwise.
func OptionalAttr(name, value string, ok bool) Attr {
	if !ok {
		return OmittedAttr(name)
	}
	return StringAttr(name, value)
}

// String renders the attribute, or returns "" for omitted attributes.
func (a Attr) String() string {
	switch a.Kind {
	case AttrFlag:
		return a.Name
	case AttrOmitted:
		return ""
	default:
		return a.Name + `="` + html.EscapeString(a.Value) + `"`
	}
}

// Attributes is an ordered attribute list.
type Attributes []Attr

// Set replaces the attribute with the same name in place, or appends it.
func (as Attributes) Set(a Attr) Attributes {
	for i := range as {
		if as[i].Name == a.Name {
			out := make(Attributes, len(as))
			copy(out, as)
			out[i] = a
			return out
		}
	}
	out := make(Attributes, 0, len(as)+1)
	out = append(out, as...)
	return append(out, a)
}

// Merge applies each attribute of other through Set, keeping the receiver's order.
func (as Attributes) Merge(other Attributes) Attributes {
	out := as
	for _, a := range other {
		out = out.Set(a)
	}
	return out
}

// Get returns the attribute with the given name.
func (as Attributes) Get(name string) (Attr, bool) {
	for _, a := range as {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// Without returns a copy without the named attribute.
func (as Attributes) Without(name string) Attributes {
	out := make(Attributes, 0, len(as))
	for _, a := range as {
		if a.Name != name {
			out = append(out, a)
		}
	}
	return out
}

// Rendered returns the attribute list with omitted entries dropped.
func (as Attributes) Rendered() Attributes {
	out := make(Attributes, 0, len(as))
	for _, a := range as {
		if a.Kind != AttrOmitted {
			out = append(out, a)
		}
	}
	return out
}

// String renders the attributes separated by single spaces.
func (as Attributes) String() string {
	parts := make([]string, 0, len(as))
	for _, a := range as.Rendered() {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}
