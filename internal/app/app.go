// Package app implements the application layer for zephyr.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/zephyr-ci/zephyr/internal/core/domain"
	"github.com/zephyr-ci/zephyr/internal/core/ports"
	"github.com/zephyr-ci/zephyr/internal/engine/decider"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	decider      *decider.Decider
	store        ports.ChecksumStore
	builder      ports.ImageBuilder
	confirmer    ports.Confirmer
	logger       ports.Logger
	settings     domain.Settings

	// now is swappable for tests; build log names embed a timestamp.
	now func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	dec *decider.Decider,
	store ports.ChecksumStore,
	builder ports.ImageBuilder,
	confirmer ports.Confirmer,
	log ports.Logger,
	settings domain.Settings,
) *App {
	return &App{
		configLoader: loader,
		decider:      dec,
		store:        store,
		builder:      builder,
		confirmer:    confirmer,
		logger:       log,
		settings:     settings,
		now:          time.Now,
	}
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	// Python selects the interpreter version; empty means the configured
	// default.
	Python string
	// Images restricts the check to the named image types; empty means all.
	Images []string
	// Force marks every image as needing a rebuild.
	Force bool
}

// Check computes the rebuild decision without building anything.
func (a *App) Check(ctx context.Context, opts CheckOptions) (*domain.Decision, error) {
	project, err := a.configLoader.Load(".", a.settings)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	python, err := resolvePython(project, opts.Python)
	if err != nil {
		return nil, err
	}

	images, err := resolveImages(opts.Images)
	if err != nil {
		return nil, err
	}

	force := opts.Force || a.settings.ForceBuild

	return a.decider.Decide(ctx, project, python, images, force)
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// Python selects the interpreter version; empty means the configured
	// default.
	Python string
	// Images restricts the run to the named image types; empty means all.
	Images []string
	// Force rebuilds every image regardless of the decision.
	Force bool
	// Cache is the layer cache directive: local, pull or none. Empty and
	// "auto" resolve to local.
	Cache string
	// Answer, when set, answers every confirmation prompt without asking.
	Answer string
}

// Build computes the rebuild decision and runs the necessary image builds
// in dependency order, gated by confirmation. Checksums and build markers
// are persisted only after the corresponding build succeeded.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	project, err := a.configLoader.Load(".", a.settings)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	python, err := resolvePython(project, opts.Python)
	if err != nil {
		return err
	}

	images, err := resolveImages(opts.Images)
	if err != nil {
		return err
	}

	cache, err := domain.ParseCacheDirective(opts.Cache)
	if err != nil {
		return err
	}

	if opts.Answer != "" {
		if _, err := domain.ParseAnswer(opts.Answer); err != nil {
			return err
		}
	}

	force := opts.Force || a.settings.ForceBuild

	decision, err := a.decider.Decide(ctx, project, python, images, force)
	if err != nil {
		return err
	}

	for _, img := range decision.Images {
		if a.settings.Verbose {
			for _, f := range img.Files {
				a.logger.Info(fmt.Sprintf("%s: current %s stored %s", f.Path, f.CurrentHash, f.StoredHash))
			}
		}

		if !img.NeedsRebuild() {
			a.logger.Info(fmt.Sprintf("%s image for python %s is up to date", img.Image, python))
			continue
		}

		a.reportReason(img)

		answer, err := a.resolveAnswer(ctx, img, opts.Answer)
		if err != nil {
			return err
		}

		switch answer {
		case domain.AnswerQuit:
			return domain.ErrQuitSelected
		case domain.AnswerNo:
			a.logger.Warn(fmt.Sprintf("skipping %s image, checksums left untouched", img.Image))
			continue
		case domain.AnswerYes:
		}

		if err := a.buildImage(ctx, project, img, cache); err != nil {
			return err
		}
	}

	return nil
}

// reportReason logs why an image needs rebuilding.
func (a *App) reportReason(img domain.ImageDecision) {
	switch {
	case img.Forced:
		a.logger.Info(fmt.Sprintf("%s image rebuild forced", img.Image))
	case len(img.ChangedFiles()) > 0:
		for _, path := range img.ChangedFiles() {
			a.logger.Info(fmt.Sprintf("%s changed since last %s build", path, img.Image))
		}
	case img.MarkerMissing:
		a.logger.Info(fmt.Sprintf("no successful %s build on record", img.Image))
	}
}

// resolveAnswer obtains the confirmation answer for one image, either from
// the command-line override or interactively.
func (a *App) resolveAnswer(ctx context.Context, img domain.ImageDecision, override string) (domain.Answer, error) {
	question := fmt.Sprintf("Rebuild %s image for python %s?", img.Image, img.Python)

	if override != "" {
		return domain.ParseAnswer(override)
	}

	return a.confirmer.Confirm(ctx, question)
}

// buildImage runs one image build and persists its state on success.
func (a *App) buildImage(
	ctx context.Context,
	project *domain.Project,
	img domain.ImageDecision,
	cache domain.CacheDirective,
) error {
	spec := buildSpec(project, img.Image, img.Python, cache)

	for _, ref := range spec.Pull {
		if err := a.builder.Pull(ctx, ref); err != nil {
			a.logger.Warn(fmt.Sprintf("cache warm-up pull failed for %s, building without it", ref))
		}
	}

	logPath, logFile, err := a.createBuildLog(project, img)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("building %s", spec.Tags[0]))

	buildErr := a.builder.Build(ctx, spec, logFile)
	if closeErr := logFile.Close(); buildErr == nil {
		buildErr = closeErr
	}

	if buildErr != nil {
		a.logger.Warn(fmt.Sprintf("build output kept at %s", logPath))
		return zerr.With(buildErr, "build_log", logPath)
	}

	// The log only matters for failed builds.
	if err := os.Remove(logPath); err != nil {
		a.logger.Warn(fmt.Sprintf("could not remove build log %s", logPath))
	}

	if err := a.decider.Record(project, img); err != nil {
		return zerr.Wrap(err, "failed to record checksums after build")
	}

	marker := domain.BuildMarker{
		Branch:  project.Branch,
		Image:   img.Image,
		Python:  img.Python,
		Tag:     spec.Tags[0],
		BuiltAt: a.now(),
	}
	if err := a.store.PutMarker(project.Root, marker); err != nil {
		return zerr.Wrap(err, "failed to store build marker")
	}

	a.logger.Info(fmt.Sprintf("built %s", spec.Tags[0]))

	return nil
}

// createBuildLog opens a fresh build log file under the project state
// directory.
func (a *App) createBuildLog(project *domain.Project, img domain.ImageDecision) (string, *os.File, error) {
	logsDir := filepath.Join(project.Root, domain.DefaultLogsPath())
	if err := os.MkdirAll(logsDir, domain.DirPerm); err != nil {
		return "", nil, zerr.Wrap(err, domain.ErrBuildLogCreateFailed.Error())
	}

	name := fmt.Sprintf("%s-python%s-%d.log", img.Image, img.Python, a.now().Unix())
	logPath := filepath.Join(logsDir, name)

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return "", nil, zerr.Wrap(err, domain.ErrBuildLogCreateFailed.Error())
	}

	return logPath, logFile, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Checksums removes all checksum records and build markers.
	Checksums bool
	// Images removes the locally built images listed by the markers.
	Images bool
}

// Clean removes stored state and optionally the built images. Image
// removal is best-effort; a missing image is not an error.
func (a *App) Clean(ctx context.Context, opts CleanOptions) error {
	project, err := a.configLoader.Load(".", a.settings)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var errs error

	if opts.Images {
		markers, err := a.store.Markers(project.Root)
		if err != nil {
			a.logger.Warn("could not list build markers, skipping image removal")
		}

		for _, marker := range markers {
			if err := a.builder.Remove(ctx, marker.Tag); err != nil {
				a.logger.Warn(fmt.Sprintf("could not remove image %s", marker.Tag))
				continue
			}
			a.logger.Info(fmt.Sprintf("removed image %s", marker.Tag))
		}
	}

	if opts.Checksums {
		a.logger.Info("removing checksum records and build markers...")
		if err := a.store.Clear(project.Root); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, "failed to clear stored state"))
		}
	}

	return errs
}

// resolvePython validates the requested interpreter version against the
// project configuration, defaulting to the configured default version.
func resolvePython(project *domain.Project, python string) (string, error) {
	if python == "" {
		return project.DefaultPythonVersion, nil
	}

	if !slices.Contains(project.PythonVersions, python) {
		return "", zerr.With(domain.ErrUnknownPythonVersion, "python", python)
	}

	return python, nil
}

// resolveImages parses the requested image types, preserving dependency
// order. An empty request means every image type.
func resolveImages(names []string) ([]domain.ImageType, error) {
	if len(names) == 0 {
		return domain.BuildOrder(), nil
	}

	requested := make(map[domain.ImageType]bool, len(names))
	for _, name := range names {
		img, err := domain.ParseImageType(name)
		if err != nil {
			return nil, err
		}
		requested[img] = true
	}

	var images []domain.ImageType
	for _, img := range domain.BuildOrder() {
		if requested[img] {
			images = append(images, img)
		}
	}

	return images, nil
}

// buildSpec assembles the build invocation for one image type.
func buildSpec(
	project *domain.Project,
	img domain.ImageType,
	python string,
	cache domain.CacheDirective,
) domain.BuildSpec {
	cfg := project.Images[img]
	ref := project.ImageReference(img, python)

	tags := []string{ref}
	if img == domain.ImageFinal && python == project.DefaultPythonVersion {
		tags = append(tags, project.DefaultReference())
	}

	args := make(map[string]string, len(cfg.BuildArgs)+1)
	for k, v := range cfg.BuildArgs {
		args[k] = v
	}
	args["PYTHON_VERSION"] = python

	spec := domain.BuildSpec{
		Image:      img,
		ContextDir: filepath.Join(project.Root, cfg.ContextDir),
		Dockerfile: cfg.Dockerfile,
		Target:     cfg.Target,
		Tags:       tags,
		NoCache:    cache == domain.CacheNone,
		BuildArgs:  args,
	}

	if cache == domain.CachePull {
		spec.CacheFrom = []string{ref}
		spec.Pull = []string{ref}
	}

	return spec
}
