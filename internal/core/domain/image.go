// Package domain contains the core types for image rebuild decisions.
package domain

import "go.trai.ch/zerr"

// ImageType classifies a build target. Image types form a fixed dependency
// chain: the base image must exist before www, which must exist before final.
type ImageType string

const (
	// ImageBase is the shared dependency image all other images build on.
	ImageBase ImageType = "base"
	// ImageWWW is the asset-compilation image layered on top of base.
	ImageWWW ImageType = "www"
	// ImageFinal is the image developers and CI actually run.
	ImageFinal ImageType = "final"
)

// BuildOrder returns all image types in dependency order.
func BuildOrder() []ImageType {
	return []ImageType{ImageBase, ImageWWW, ImageFinal}
}

// ParseImageType validates a user-provided image type string.
func ParseImageType(s string) (ImageType, error) {
	switch ImageType(s) {
	case ImageBase, ImageWWW, ImageFinal:
		return ImageType(s), nil
	default:
		return "", zerr.With(ErrUnknownImageType, "image_type", s)
	}
}

// CacheDirective controls how the container build reuses layers.
type CacheDirective string

const (
	// CacheLocal relies on the local layer cache only.
	CacheLocal CacheDirective = "local"
	// CachePull warms the cache from previously pushed images before building.
	CachePull CacheDirective = "pull"
	// CacheNone disables layer caching entirely.
	CacheNone CacheDirective = "none"
)

// ParseCacheDirective validates a user-provided cache directive string.
// The empty string and "auto" resolve to CacheLocal.
func ParseCacheDirective(s string) (CacheDirective, error) {
	switch s {
	case "", "auto", string(CacheLocal):
		return CacheLocal, nil
	case string(CachePull):
		return CachePull, nil
	case string(CacheNone):
		return CacheNone, nil
	default:
		return "", zerr.With(ErrInvalidCacheDirective, "cache", s)
	}
}

// ImageConfig describes one configured build target.
type ImageConfig struct {
	// TrackedFiles are the dependency-relevant files whose content gates
	// rebuilds. Paths are relative to the project root.
	TrackedFiles []string
	// Dockerfile is the path of the Dockerfile relative to ContextDir.
	Dockerfile string
	// ContextDir is the build context directory relative to the project root.
	ContextDir string
	// Target is the Dockerfile stage to build, when set.
	Target string
	// BuildArgs are static build arguments passed to every build of this image.
	BuildArgs map[string]string
}

// Project is the fully resolved build configuration.
type Project struct {
	// Root is the absolute project root directory.
	Root string
	// Name is the image name stem, e.g. "zephyr" yields zephyr-base etc.
	Name string
	// Registry prefixes all image references, e.g. "ghcr.io/acme".
	Registry string
	// Branch scopes checksum state. Resolved from config or settings.
	Branch string
	// PythonVersions lists every supported interpreter version.
	PythonVersions []string
	// DefaultPythonVersion selects which build gets the unversioned tag.
	DefaultPythonVersion string
	// Images maps each image type to its build definition.
	Images map[ImageType]ImageConfig
}

// ImageReference returns the fully qualified tag for an image build,
// e.g. "ghcr.io/acme/zephyr-base:main-python3.12".
func (p *Project) ImageReference(image ImageType, python string) string {
	name := p.Name + "-" + string(image)
	if image == ImageFinal {
		name = p.Name
	}
	ref := name + ":" + p.Branch + "-python" + python
	if p.Registry != "" {
		ref = p.Registry + "/" + ref
	}
	return ref
}

// DefaultReference returns the unversioned alias applied to the final image
// when it was built with the default Python version.
func (p *Project) DefaultReference() string {
	ref := p.Name + ":" + p.Branch
	if p.Registry != "" {
		ref = p.Registry + "/" + ref
	}
	return ref
}

// BuildSpec is the resolved input for a single container build invocation.
type BuildSpec struct {
	Image      ImageType
	ContextDir string
	Dockerfile string
	Target     string
	Tags       []string
	CacheFrom  []string
	NoCache    bool
	Pull       []string
	BuildArgs  map[string]string
}
