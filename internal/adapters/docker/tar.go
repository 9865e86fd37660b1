package docker

import (
	"archive/tar"
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zephyr-ci/zephyr/internal/core/domain"
	"go.trai.ch/zerr"
)

// skippedDirs are directory names excluded from every build context. The
// state directory must never leak into an image layer.
var skippedDirs = map[string]bool{
	".git":               true,
	"node_modules":       true,
	domain.ZephyrDirName: true,
}

// archiveContext packs the build context directory into an in-memory tar
// archive. Paths inside the archive are relative to the context root with
// forward slashes, as the daemon expects.
func archiveContext(contextDir string) (io.ReadCloser, error) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	err := filepath.WalkDir(contextDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() && skippedDirs[entry.Name()] {
			return filepath.SkipDir
		}

		relPath, err := filepath.Rel(contextDir, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(relPath)

		if err := tw.WriteHeader(header); err != nil {
			return err
		}

		if info.Mode().IsRegular() {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			if _, err := io.Copy(tw, f); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to archive build context")
	}

	if err := tw.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to archive build context")
	}

	return io.NopCloser(&buf), nil
}
