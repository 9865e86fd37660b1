package app

import (
	"github.com/zephyr-ci/zephyr/internal/core/domain"
	"github.com/zephyr-ci/zephyr/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI
// layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	Settings     domain.Settings
	ConfigLoader ports.ConfigLoader
	Store        ports.ChecksumStore
	Builder      ports.ImageBuilder
	Confirmer    ports.Confirmer
}
