// Package config provides the configuration loader for zephyr.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/zephyr-ci/zephyr/internal/core/domain"
	"github.com/zephyr-ci/zephyr/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers zephyr.yaml walking up from cwd and returns the resolved
// project configuration.
func (l *Loader) Load(cwd string, settings domain.Settings) (*domain.Project, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var zephyrfile Zephyrfile
	if err := readAndUnmarshalYAML(configPath, &zephyrfile); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve project root")
	}

	project, err := l.buildProject(&zephyrfile, root, settings)
	if err != nil {
		return nil, err
	}

	return project, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	// The walk-up terminates on Dir(x) == x, which only holds for
	// absolute paths.
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) buildProject(zephyrfile *Zephyrfile, root string, settings domain.Settings) (*domain.Project, error) {
	if len(zephyrfile.Images) == 0 {
		return nil, domain.ErrNoImagesConfigured
	}
	if len(zephyrfile.Python.Versions) == 0 {
		return nil, domain.ErrMissingPythonVersions
	}

	defaultPython := zephyrfile.Python.Default
	if defaultPython == "" {
		defaultPython = zephyrfile.Python.Versions[0]
	}
	if !slices.Contains(zephyrfile.Python.Versions, defaultPython) {
		return nil, zerr.With(domain.ErrUnknownPythonVersion, "python", defaultPython)
	}

	name := zephyrfile.Name
	if name == "" {
		name = "zephyr"
	}

	// Branch priority: environment override, then config, then "main".
	branch := settings.Branch
	if branch == "" {
		branch = zephyrfile.Branch
	}
	if branch == "" {
		branch = "main"
	}

	images := make(map[domain.ImageType]domain.ImageConfig, len(zephyrfile.Images))
	for rawType, dto := range zephyrfile.Images {
		imageType, err := domain.ParseImageType(rawType)
		if err != nil {
			return nil, err
		}
		cfg, err := l.buildImageConfig(imageType, dto)
		if err != nil {
			return nil, err
		}
		images[imageType] = cfg
	}

	return &domain.Project{
		Root:                 root,
		Name:                 name,
		Registry:             zephyrfile.Registry,
		Branch:               branch,
		PythonVersions:       zephyrfile.Python.Versions,
		DefaultPythonVersion: defaultPython,
		Images:               images,
	}, nil
}

func (l *Loader) buildImageConfig(imageType domain.ImageType, dto *ImageDTO) (domain.ImageConfig, error) {
	if len(dto.TrackedFiles) == 0 {
		return domain.ImageConfig{}, zerr.With(domain.ErrNoTrackedFiles, "image", string(imageType))
	}

	dockerfile := dto.Dockerfile
	if dockerfile == "" {
		dockerfile = "Dockerfile"
	}
	contextDir := dto.Context
	if contextDir == "" {
		contextDir = "."
	}

	return domain.ImageConfig{
		TrackedFiles: canonicalizePaths(dto.TrackedFiles),
		Dockerfile:   dockerfile,
		ContextDir:   contextDir,
		Target:       dto.Target,
		BuildArgs:    dto.BuildArgs,
	}, nil
}

// canonicalizePaths sorts and deduplicates tracked file paths so that the
// decision output is deterministic regardless of config ordering.
func canonicalizePaths(paths []string) []string {
	sorted := make([]string, len(paths))
	for i, p := range paths {
		sorted[i] = filepath.Clean(p)
	}
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
