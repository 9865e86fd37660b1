package docker

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zephyr-ci/zephyr/internal/adapters/logger"
	"github.com/zephyr-ci/zephyr/internal/core/ports"
)

// NodeID is the unique identifier for the image builder Graft node.
const NodeID graft.ID = "adapter.image_builder"

func init() {
	graft.Register(graft.Node[ports.ImageBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ImageBuilder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(log)
		},
	})
}
