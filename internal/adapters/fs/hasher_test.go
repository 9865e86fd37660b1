package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zephyr-ci/zephyr/internal/adapters/fs"
	"github.com/zephyr-ci/zephyr/internal/core/domain"
)

func TestComputeFileHash(t *testing.T) {
	t.Parallel()

	hasher := fs.NewHasher()

	t.Run("stable for same content", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "setup.py")
		require.NoError(t, os.WriteFile(path, []byte("install_requires = []\n"), 0o600))

		first, err := hasher.ComputeFileHash(path)
		require.NoError(t, err)
		second, err := hasher.ComputeFileHash(path)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, first, 16)
	})

	t.Run("changes with content", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "Dockerfile")
		require.NoError(t, os.WriteFile(path, []byte("FROM debian:bookworm\n"), 0o600))

		before, err := hasher.ComputeFileHash(path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("FROM debian:trixie\n"), 0o600))
		after, err := hasher.ComputeFileHash(path)
		require.NoError(t, err)

		assert.NotEqual(t, before, after)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := hasher.ComputeFileHash(filepath.Join(t.TempDir(), "absent.txt"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrTrackedFileMissing.Error())
	})
}
