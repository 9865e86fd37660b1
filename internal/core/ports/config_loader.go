package ports

import "github.com/zephyr-ci/zephyr/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers zephyr.yaml starting at cwd and returns the resolved
	// project. Settings provide environment-level overrides such as the
	// branch name.
	Load(cwd string, settings domain.Settings) (*domain.Project, error)
}
