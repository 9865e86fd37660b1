package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zephyr-ci/zephyr/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"github.com/zephyr-ci/zephyr/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"github.com/zephyr-ci/zephyr/internal/adapters/docker"   //nolint:depguard // Wired in app layer
	"github.com/zephyr-ci/zephyr/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/zephyr-ci/zephyr/internal/adapters/state"    //nolint:depguard // Wired in app layer
	"github.com/zephyr-ci/zephyr/internal/adapters/term"     //nolint:depguard // Wired in app layer
	"github.com/zephyr-ci/zephyr/internal/core/domain"
	"github.com/zephyr-ci/zephyr/internal/core/ports"
	"github.com/zephyr-ci/zephyr/internal/engine/decider"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components
	// Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			decider.NodeID,
			state.NodeID,
			docker.NodeID,
			term.NodeID,
			logger.NodeID,
			detector.SettingsNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			detector.SettingsNodeID,
			config.NodeID,
			state.NodeID,
			docker.NodeID,
			term.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	dec, err := graft.Dep[*decider.Decider](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ChecksumStore](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.ImageBuilder](ctx)
	if err != nil {
		return nil, err
	}

	confirmer, err := graft.Dep[ports.Confirmer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, dec, store, builder, confirmer, log, settings), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ChecksumStore](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.ImageBuilder](ctx)
	if err != nil {
		return nil, err
	}

	confirmer, err := graft.Dep[ports.Confirmer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          application,
		Logger:       log,
		Settings:     settings,
		ConfigLoader: loader,
		Store:        store,
		Builder:      builder,
		Confirmer:    confirmer,
	}, nil
}
