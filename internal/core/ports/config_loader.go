package ports

import "go.trai.ch/vitetag/internal/core/domain"

// ConfigLoader defines the interface for loading the resolver configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers vite.yaml upward from cwd and returns the configuration.
	// Without a config file, defaults rooted at cwd are returned.
	Load(cwd string) (domain.Config, error)

	// LoadFile reads the configuration from an explicit config file path.
	LoadFile(path string) (domain.Config, error)

	// DiscoverConfigPath walks up from cwd and returns the path of vite.yaml.
	// It returns an empty string when no file is found.
	DiscoverConfigPath(cwd string) (string, error)
}
