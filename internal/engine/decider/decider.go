// Package decider computes image rebuild decisions from tracked-file
// checksums.
package decider

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/zephyr-ci/zephyr/internal/core/domain"
	"github.com/zephyr-ci/zephyr/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Decider compares the current content hashes of tracked files against the
// stored records and derives which images must be rebuilt.
type Decider struct {
	hasher ports.Hasher
	store  ports.ChecksumStore
	logger ports.Logger
}

// NewDecider creates a new Decider with the given dependencies.
func NewDecider(hasher ports.Hasher, store ports.ChecksumStore, log ports.Logger) *Decider {
	return &Decider{
		hasher: hasher,
		store:  store,
		logger: log,
	}
}

// Decide computes the rebuild verdict for the given images and Python
// version, in the order provided. Stored records are never modified; call
// Record after a successful build to persist the new hashes.
func (d *Decider) Decide(
	ctx context.Context,
	project *domain.Project,
	python string,
	images []domain.ImageType,
	force bool,
) (*domain.Decision, error) {
	decision := &domain.Decision{Branch: project.Branch}

	for _, img := range images {
		cfg, ok := project.Images[img]
		if !ok {
			return nil, zerr.With(domain.ErrUnknownImageType, "image_type", string(img))
		}

		imageDecision, err := d.decideImage(ctx, project, img, cfg, python, force)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrDecisionFailed.Error())
		}

		decision.Images = append(decision.Images, imageDecision)
	}

	return decision, nil
}

// decideImage hashes every tracked file of one image concurrently and
// compares the results against the stored records.
func (d *Decider) decideImage(
	ctx context.Context,
	project *domain.Project,
	img domain.ImageType,
	cfg domain.ImageConfig,
	python string,
	force bool,
) (domain.ImageDecision, error) {
	files := make([]domain.FileStatus, len(cfg.TrackedFiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range cfg.TrackedFiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			hash, err := d.hasher.ComputeFileHash(filepath.Join(project.Root, path))
			if err != nil {
				return err
			}

			// An unreadable record counts as a mismatch rather than a
			// fatal error; the next successful build rewrites it.
			record, err := d.store.GetChecksum(project.Root, project.Branch, img, path)
			if err != nil {
				d.logger.Warn(fmt.Sprintf("discarding unreadable checksum record for %s", path))
				record = nil
			}

			status := domain.FileStatus{Path: path, CurrentHash: hash}
			if record != nil {
				status.StoredHash = record.Hash
			}
			files[i] = status

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.ImageDecision{}, err
	}

	marker, err := d.store.GetMarker(project.Root, project.Branch, img, python)
	if err != nil {
		d.logger.Warn(fmt.Sprintf("discarding unreadable build marker for %s", img))
		marker = nil
	}

	return domain.ImageDecision{
		Image:         img,
		Python:        python,
		Files:         files,
		Forced:        force,
		MarkerMissing: marker == nil,
	}, nil
}

// Record persists the current hashes of one image decision. Called after
// the corresponding build succeeded so that an unchanged tree maps to a
// clean verdict on the next run.
func (d *Decider) Record(project *domain.Project, image domain.ImageDecision) error {
	now := time.Now()

	for _, f := range image.Files {
		record := domain.ChecksumRecord{
			Branch:     project.Branch,
			Image:      image.Image,
			Path:       f.Path,
			Hash:       f.CurrentHash,
			ComputedAt: now,
		}

		if err := d.store.PutChecksum(project.Root, record); err != nil {
			return zerr.With(err, "path", f.Path)
		}
	}

	return nil
}
