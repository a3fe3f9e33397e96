package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vitetag/internal/adapters/fs"
	"go.trai.ch/vitetag/internal/core/domain"
)

func TestOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	hot := filepath.Join(dir, "hot")
	require.NoError(t, os.WriteFile(hot, []byte("http://localhost:5173\n"), domain.PrivateFilePerm))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "build"), domain.DirPerm))

	fsys := fs.NewOSFileSystem()

	assert.True(t, fsys.Exists(hot))
	assert.False(t, fsys.Exists(filepath.Join(dir, "missing")))
	assert.False(t, fsys.Exists(filepath.Join(dir, "build")), "directories are not files")

	data, err := fsys.ReadFile(hot)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173\n", string(data))

	_, err = fsys.ReadFile(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.True(t, fs.IsNotExist(err))
}

func TestFSFileSystem(t *testing.T) {
	mapFS := fstest.MapFS{
		"public/build/manifest.json": {Data: []byte(`{}`)},
		"public/hot":                 {Data: []byte("http://localhost:5173")},
	}
	fsys := fs.NewFSFileSystem(mapFS)

	tests := []struct {
		name   string
		path   string
		exists bool
	}{
		{name: "relative", path: "public/hot", exists: true},
		{name: "dot prefixed", path: "./public/build/manifest.json", exists: true},
		{name: "rooted", path: "/public/hot", exists: true},
		{name: "unclean", path: "public/build/../hot", exists: true},
		{name: "directory", path: "public/build", exists: false},
		{name: "missing", path: "public/missing", exists: false},
		{name: "escaping", path: "../public/hot", exists: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exists, fsys.Exists(tt.path))
		})
	}

	data, err := fsys.ReadFile("public/build/manifest.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	_, err = fsys.ReadFile("public/missing")
	require.Error(t, err)
	assert.True(t, fs.IsNotExist(err))

	_, err = fsys.ReadFile("../escape")
	require.Error(t, err)
}
