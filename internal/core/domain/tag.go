package domain

import (
	"regexp"
	"strings"
)

var stylesheetPattern = regexp.MustCompile(`\.(css|less|sass|scss|styl|stylus|pcss|postcss)$`)

// IsStylesheetPath reports whether path names a stylesheet by its extension.
func IsStylesheetPath(path string) bool {
	return stylesheetPattern.MatchString(path)
}

// ScriptTag renders a module script tag. extra is merged after type and src.
func ScriptTag(url string, extra Attributes) string {
	attrs := Attributes{
		StringAttr("type", "module"),
		StringAttr("src", url),
	}.Merge(extra)
	return "<script " + attrs.String() + "></script>"
}

// StylesheetTag renders a stylesheet link tag. extra is merged after rel and href.
func StylesheetTag(url string, extra Attributes) string {
	attrs := Attributes{
		StringAttr("rel", "stylesheet"),
		StringAttr("href", url),
	}.Merge(extra)
	return "<link " + attrs.String() + " />"
}

// Tag renders a stylesheet or script tag for url depending on its extension.
func Tag(url string, extra Attributes) string {
	if IsStylesheetPath(url) {
		return StylesheetTag(url, extra)
	}
	return ScriptTag(url, extra)
}

// LinkTag renders a self-closing link tag from attrs.
func LinkTag(attrs Attributes) string {
	return "<link " + attrs.String() + " />"
}

// IsLinkTag reports whether a rendered tag is a link element.
func IsLinkTag(tag string) bool {
	return strings.HasPrefix(tag, "<link")
}
