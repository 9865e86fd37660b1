package ports

import (
	"context"
	"io"

	"github.com/zephyr-ci/zephyr/internal/core/domain"
)

// ImageBuilder drives the container engine. Build failures propagate as-is;
// callers do not retry.
//
//go:generate mockgen -source=image_builder.go -destination=mocks/mock_image_builder.go -package=mocks
type ImageBuilder interface {
	// Build runs a single image build, streaming build output to logs.
	Build(ctx context.Context, spec domain.BuildSpec, logs io.Writer) error

	// Pull fetches an image to warm the layer cache. A failed pull is not
	// fatal to the subsequent build.
	Pull(ctx context.Context, ref string) error

	// Remove deletes a local image. Used by best-effort cleanup.
	Remove(ctx context.Context, ref string) error
}
