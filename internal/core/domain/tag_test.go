package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vitetag/internal/core/domain"
)

func TestIsStylesheetPath(t *testing.T) {
	for _, path := range []string{
		"app.css", "app.less", "app.sass", "app.scss",
		"app.styl", "app.stylus", "app.pcss", "app.postcss",
		"http://localhost:5173/resources/css/app.css",
	} {
		assert.True(t, domain.IsStylesheetPath(path), path)
	}

	for _, path := range []string{
		"app.js", "app.ts", "app.css.js", "app.css?v=1", "css", "@vite/client",
	} {
		assert.False(t, domain.IsStylesheetPath(path), path)
	}
}

func TestTag(t *testing.T) {
	assert.Equal(t,
		`<script type="module" src="/build/app.js"></script>`,
		domain.Tag("/build/app.js", nil))

	assert.Equal(t,
		`<link rel="stylesheet" href="/build/app.css" />`,
		domain.Tag("/build/app.css", nil))

	assert.Equal(t,
		`<script type="module" src="/build/app.js" integrity="sha384-x"></script>`,
		domain.ScriptTag("/build/app.js", domain.Attributes{domain.StringAttr("integrity", "sha384-x")}))

	assert.Equal(t,
		`<link rel="stylesheet" href="/build/app.css" />`,
		domain.StylesheetTag("/build/app.css", domain.Attributes{domain.OmittedAttr("integrity")}))
}

func TestLinkTag(t *testing.T) {
	tag := domain.LinkTag(domain.Attributes{
		domain.StringAttr("rel", "modulepreload"),
		domain.StringAttr("href", "/build/app.js"),
	})
	assert.Equal(t, `<link rel="modulepreload" href="/build/app.js" />`, tag)
	assert.True(t, domain.IsLinkTag(tag))
	assert.False(t, domain.IsLinkTag(`<script type="module" src="/a.js"></script>`))
}
