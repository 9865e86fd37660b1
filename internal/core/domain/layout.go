package domain

import "path/filepath"

const (
	// ZephyrDirName is the name of the internal state directory.
	ZephyrDirName = ".zephyr"

	// ChecksumsDirName is the name of the checksum record directory.
	ChecksumsDirName = "checksums"

	// MarkersDirName is the name of the build marker directory.
	MarkersDirName = "built"

	// LogsDirName is the name of the build log directory.
	LogsDirName = "logs"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "zephyr.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultChecksumsPath returns the checksum record directory relative to
// the project root.
func DefaultChecksumsPath() string {
	return filepath.Join(ZephyrDirName, ChecksumsDirName)
}

// DefaultMarkersPath returns the build marker directory relative to the
// project root.
func DefaultMarkersPath() string {
	return filepath.Join(ZephyrDirName, MarkersDirName)
}

// DefaultLogsPath returns the build log directory relative to the project
// root.
func DefaultLogsPath() string {
	return filepath.Join(ZephyrDirName, LogsDirName)
}
