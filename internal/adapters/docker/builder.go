// Package docker implements the image builder adapter on top of the Docker
// Engine API.
package docker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/zephyr-ci/zephyr/internal/core/domain"
	"github.com/zephyr-ci/zephyr/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder drives image builds through the Docker daemon.
type Builder struct {
	client *client.Client
	logger ports.Logger
}

// NewBuilder creates a Builder connected to the daemon configured by the
// standard DOCKER_HOST environment. The connection is established lazily on
// first use.
func NewBuilder(log ports.Logger) (*Builder, error) {
	cli, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDockerClientFailed.Error())
	}

	return &Builder{
		client: cli,
		logger: log,
	}, nil
}

// Close closes the underlying daemon connection.
func (b *Builder) Close() error {
	return b.client.Close()
}

// Build runs a single image build, streaming the daemon's build output to
// logs. The build context is archived from spec.ContextDir.
func (b *Builder) Build(ctx context.Context, spec domain.BuildSpec, logs io.Writer) error {
	buildContext, err := archiveContext(spec.ContextDir)
	if err != nil {
		return zerr.Wrap(err, domain.ErrBuildContextFailed.Error())
	}
	defer buildContext.Close()

	opts := types.ImageBuildOptions{
		Dockerfile: spec.Dockerfile,
		Tags:       spec.Tags,
		Target:     spec.Target,
		Remove:     true,
		NoCache:    spec.NoCache,
		CacheFrom:  spec.CacheFrom,
		BuildArgs:  buildArgs(spec.BuildArgs),
	}

	response, err := b.client.ImageBuild(ctx, buildContext, opts)
	if err != nil {
		return zerr.Wrap(err, domain.ErrBuildFailed.Error())
	}
	defer response.Body.Close()

	if err := streamBuild(response.Body, logs); err != nil {
		return err
	}

	return nil
}

// Pull fetches an image to warm the local layer cache. The pull's progress
// stream is drained and discarded.
func (b *Builder) Pull(ctx context.Context, ref string) error {
	reader, err := b.client.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return zerr.Wrap(err, fmt.Sprintf("failed to pull %s", ref))
	}
	defer reader.Close()

	if _, err := io.Copy(io.Discard, reader); err != nil {
		return zerr.Wrap(err, fmt.Sprintf("failed to pull %s", ref))
	}

	return nil
}

// Remove deletes a local image.
func (b *Builder) Remove(ctx context.Context, ref string) error {
	_, err := b.client.ImageRemove(ctx, ref, image.RemoveOptions{
		PruneChildren: true,
	})
	if err != nil {
		return zerr.Wrap(err, fmt.Sprintf("failed to remove %s", ref))
	}

	return nil
}

// buildArgs converts the resolved build arguments into the pointer map the
// Docker API expects.
func buildArgs(args map[string]string) map[string]*string {
	if len(args) == 0 {
		return nil
	}

	converted := make(map[string]*string, len(args))
	for k, v := range args {
		converted[k] = &v
	}
	return converted
}

// buildMessage is one JSON object from the daemon's build output stream.
type buildMessage struct {
	Stream      string `json:"stream"`
	Status      string `json:"status"`
	Error       string `json:"error"`
	ErrorDetail *struct {
		Message string `json:"message"`
	} `json:"errorDetail"`
}

// streamBuild decodes the daemon's JSON build stream, writing human-readable
// output to w. A message carrying an error terminates the stream and is
// returned as a build failure.
func streamBuild(r io.Reader, w io.Writer) error {
	decoder := json.NewDecoder(r)

	for {
		var msg buildMessage
		if err := decoder.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return zerr.Wrap(err, domain.ErrBuildFailed.Error())
		}

		if msg.Error != "" || msg.ErrorDetail != nil {
			detail := msg.Error
			if msg.ErrorDetail != nil && msg.ErrorDetail.Message != "" {
				detail = msg.ErrorDetail.Message
			}
			fmt.Fprintln(w, detail)
			return zerr.With(domain.ErrBuildFailed, "detail", detail)
		}

		switch {
		case msg.Stream != "":
			io.WriteString(w, msg.Stream)
		case msg.Status != "":
			fmt.Fprintln(w, msg.Status)
		}
	}
}
