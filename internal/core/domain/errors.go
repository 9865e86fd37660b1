package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no zephyr.yaml can be located.
	ErrConfigNotFound = zerr.New("could not find zephyr.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoImagesConfigured is returned when the config defines no images.
	ErrNoImagesConfigured = zerr.New("no images configured")

	// ErrNoTrackedFiles is returned when an image defines no tracked files.
	ErrNoTrackedFiles = zerr.New("image defines no tracked files")

	// ErrMissingPythonVersions is returned when no Python versions are configured.
	ErrMissingPythonVersions = zerr.New("no python versions configured")

	// ErrUnknownPythonVersion is returned when a requested Python version is not configured.
	ErrUnknownPythonVersion = zerr.New("python version not configured")

	// ErrUnknownImageType is returned when an image type string is not recognized.
	ErrUnknownImageType = zerr.New("unknown image type, expected 'base', 'www' or 'final'")

	// ErrInvalidCacheDirective is returned when a cache directive is invalid.
	ErrInvalidCacheDirective = zerr.New("invalid cache directive, expected 'auto', 'local', 'pull' or 'none'")

	// ErrInvalidAnswer is returned when a forced or typed answer cannot be interpreted.
	ErrInvalidAnswer = zerr.New("invalid answer, expected yes, no or quit")

	// ErrTrackedFileMissing is returned when a tracked dependency file is absent.
	ErrTrackedFileMissing = zerr.New("tracked file not found")

	// ErrFileOpenFailed is returned when a file cannot be opened for hashing.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrStoreCreateFailed is returned when the state directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create state directory")

	// ErrStoreReadFailed is returned when a state record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read state record")

	// ErrStoreUnmarshalFailed is returned when a state record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal state record")

	// ErrStoreMarshalFailed is returned when a state record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal state record")

	// ErrStoreWriteFailed is returned when a state record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write state record")

	// ErrNoTerminal is returned when confirmation is required but no terminal
	// is attached and no forced answer is available.
	ErrNoTerminal = zerr.New("confirmation required but no terminal is attached; set FORCE_ANSWER_TO_QUESTIONS=yes to proceed or =no to skip")

	// ErrQuitSelected is returned when the operator aborts at a confirmation prompt.
	ErrQuitSelected = zerr.New("aborted at confirmation prompt")

	// ErrDockerClientFailed is returned when the container engine client cannot be created.
	ErrDockerClientFailed = zerr.New("failed to create container engine client")

	// ErrBuildContextFailed is returned when the build context archive cannot be assembled.
	ErrBuildContextFailed = zerr.New("failed to assemble build context")

	// ErrBuildFailed is returned when a container build fails.
	ErrBuildFailed = zerr.New("image build failed")

	// ErrBuildLogCreateFailed is returned when the build log file cannot be created.
	ErrBuildLogCreateFailed = zerr.New("failed to create build log file")

	// ErrDecisionFailed is returned when the rebuild decision cannot be computed.
	ErrDecisionFailed = zerr.New("failed to compute rebuild decision")
)
