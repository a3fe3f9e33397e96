package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vitetag/internal/core/domain"
)

const sampleManifest = `{
	"resources/js/app.js": {
		"file": "assets/app-4ed993c7.js",
		"src": "resources/js/app.js",
		"isEntry": true,
		"imports": ["_vendor-1a2b3c.js"],
		"dynamicImports": ["resources/js/lazy.js"],
		"css": ["assets/app-7ce8ba1a.css"],
		"integrity": "sha384-app"
	},
	"_vendor-1a2b3c.js": {
		"file": "assets/vendor-1a2b3c.js",
		"sri": "sha256-vendor"
	},
	"resources/css/app.css": {
		"file": "assets/app-7ce8ba1a.css",
		"src": "resources/css/app.css",
		"isEntry": true
	},
	"resources/css/duplicate.css": {
		"file": "assets/app-7ce8ba1a.css"
	}
}`

func TestParseManifest_PreservesKeyOrder(t *testing.T) {
	m, err := domain.ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, 4, m.Len())
	assert.Equal(t, []string{
		"resources/js/app.js",
		"_vendor-1a2b3c.js",
		"resources/css/app.css",
		"resources/css/duplicate.css",
	}, m.Keys())

	var walked []string
	for key := range m.All() {
		walked = append(walked, key)
	}
	assert.Equal(t, m.Keys(), walked)
}

func TestParseManifest_ChunkFields(t *testing.T) {
	m, err := domain.ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	chunk, ok := m.Chunk("resources/js/app.js")
	require.True(t, ok)
	assert.Equal(t, "assets/app-4ed993c7.js", chunk.File)
	assert.Equal(t, "resources/js/app.js", chunk.Src)
	assert.True(t, chunk.IsEntry)
	assert.False(t, chunk.IsDynamicEntry)
	assert.Equal(t, []string{"_vendor-1a2b3c.js"}, chunk.Imports)
	assert.Equal(t, []string{"resources/js/lazy.js"}, chunk.DynamicImports)
	assert.Equal(t, []string{"assets/app-7ce8ba1a.css"}, chunk.CSS)
	assert.Equal(t, "sha384-app", chunk.Integrity)

	_, ok = m.Chunk("missing.js")
	assert.False(t, ok)
}

func TestChunk_Field(t *testing.T) {
	m, err := domain.ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	vendor, ok := m.Chunk("_vendor-1a2b3c.js")
	require.True(t, ok)

	v, ok := vendor.Field("sri")
	assert.True(t, ok)
	assert.Equal(t, "sha256-vendor", v)

	_, ok = vendor.Field("integrity")
	assert.False(t, ok)

	// Non-string members are not exposed.
	app, _ := m.Chunk("resources/js/app.js")
	_, ok = app.Field("isEntry")
	assert.False(t, ok)

	var nilChunk *domain.Chunk
	_, ok = nilChunk.Field("integrity")
	assert.False(t, ok)

	literal := &domain.Chunk{File: "a.js", Integrity: "sha384-literal"}
	v, ok = literal.Field("integrity")
	assert.True(t, ok)
	assert.Equal(t, "sha384-literal", v)
}

func TestChunk_Field_EmptyIntegrityIsPresent(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{"a.js": {"file": "a.js", "integrity": ""}}`))
	require.NoError(t, err)

	chunk, _ := m.Chunk("a.js")
	v, ok := chunk.Field("integrity")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestManifest_ChunkByFile_FirstInsertedWins(t *testing.T) {
	m, err := domain.ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	key, chunk, ok := m.ChunkByFile("assets/app-7ce8ba1a.css")
	require.True(t, ok)
	assert.Equal(t, "resources/css/app.css", key)
	assert.Equal(t, "resources/css/app.css", chunk.Src)

	_, _, ok = m.ChunkByFile("assets/unknown.css")
	assert.False(t, ok)
}

func TestParseManifest_RepeatedKeyKeepsPosition(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{
		"a.js": {"file": "a-1.js"},
		"b.js": {"file": "b.js"},
		"a.js": {"file": "a-2.js"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a.js", "b.js"}, m.Keys())
	chunk, _ := m.Chunk("a.js")
	assert.Equal(t, "a-2.js", chunk.File)
}

func TestParseManifest_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "array", input: `[{"file": "a.js"}]`},
		{name: "truncated", input: `{"a.js": {"file": "a.js"}`},
		{name: "bad record", input: `{"a.js": {"file": 42}}`},
		{name: "scalar", input: `"manifest"`},
		{name: "trailing data", input: `{"a.js": {"file": "a.js"}} garbage`},
		{name: "second object", input: `{} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := domain.ParseManifest([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, m)
		})
	}
}

func TestParseManifest_Empty(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{}`))
	require.NoError(t, err)
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Keys())

	m, err = domain.ParseManifest([]byte("{}\n\n"))
	require.NoError(t, err)
	assert.Zero(t, m.Len())
}
