package decider

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zephyr-ci/zephyr/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"github.com/zephyr-ci/zephyr/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/zephyr-ci/zephyr/internal/adapters/state"  //nolint:depguard // Wired in engine wiring
	"github.com/zephyr-ci/zephyr/internal/core/ports"
)

// NodeID is the unique identifier for the decider Graft node.
const NodeID graft.ID = "engine.decider"

func init() {
	graft.Register(graft.Node[*Decider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.HasherNodeID,
			state.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Decider, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ChecksumStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewDecider(hasher, store, log), nil
		},
	})
}
