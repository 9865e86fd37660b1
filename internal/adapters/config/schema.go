package config

// Zephyrfile represents the structure of the zephyr.yaml configuration file.
type Zephyrfile struct {
	Version  string               `yaml:"version"`
	Name     string               `yaml:"name"`
	Registry string               `yaml:"registry"`
	Branch   string               `yaml:"branch"`
	Python   PythonDTO            `yaml:"python"`
	Images   map[string]*ImageDTO `yaml:"images"`
}

// PythonDTO configures the supported interpreter versions.
type PythonDTO struct {
	Versions []string `yaml:"versions"`
	Default  string   `yaml:"default"`
}

// ImageDTO represents one image definition in the configuration.
type ImageDTO struct {
	TrackedFiles []string          `yaml:"trackedFiles"`
	Dockerfile   string            `yaml:"dockerfile"`
	Context      string            `yaml:"context"`
	Target       string            `yaml:"target"`
	BuildArgs    map[string]string `yaml:"buildArgs"`
}
