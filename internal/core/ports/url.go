package ports

// URLGenerator turns public-relative paths into URLs.
//
//go:generate mockgen -source=url.go -destination=mocks/mock_url.go -package=mocks
type URLGenerator interface {
	// AssetPath prefixes a path relative to the public directory with the site base URL.
	AssetPath(path string) string
}
