package ports

// FileSystem is the read-only file access used to detect the dev server and load manifests.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether a regular file exists at path.
	Exists(path string) bool
	// ReadFile returns the whole contents of the file at path.
	ReadFile(path string) ([]byte, error)
}
