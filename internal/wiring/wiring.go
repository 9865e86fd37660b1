// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/zephyr-ci/zephyr/internal/adapters/config"
	_ "github.com/zephyr-ci/zephyr/internal/adapters/detector"
	_ "github.com/zephyr-ci/zephyr/internal/adapters/docker"
	_ "github.com/zephyr-ci/zephyr/internal/adapters/fs"
	_ "github.com/zephyr-ci/zephyr/internal/adapters/logger"
	_ "github.com/zephyr-ci/zephyr/internal/adapters/state"
	_ "github.com/zephyr-ci/zephyr/internal/adapters/term"
	// Register app and engine nodes.
	_ "github.com/zephyr-ci/zephyr/internal/app"
	_ "github.com/zephyr-ci/zephyr/internal/engine/decider"
)
