package state_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zephyr-ci/zephyr/internal/adapters/state"
	"github.com/zephyr-ci/zephyr/internal/core/domain"
)

func TestStoreChecksums(t *testing.T) {
	t.Parallel()

	store, err := state.NewStore()
	require.NoError(t, err)

	record := domain.ChecksumRecord{
		Branch:     "main",
		Image:      domain.ImageBase,
		Path:       "setup.py",
		Hash:       "00000000deadbeef",
		ComputedAt: time.Now().Truncate(time.Second),
	}

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, store.PutChecksum(root, record))

		got, err := store.GetChecksum(root, "main", domain.ImageBase, "setup.py")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, record, *got)
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		got, err := store.GetChecksum(t.TempDir(), "main", domain.ImageBase, "absent.py")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("replace existing", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, store.PutChecksum(root, record))

		updated := record
		updated.Hash = "00000000cafebabe"
		require.NoError(t, store.PutChecksum(root, updated))

		got, err := store.GetChecksum(root, "main", domain.ImageBase, "setup.py")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "00000000cafebabe", got.Hash)
	})

	t.Run("records are scoped by branch and image", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, store.PutChecksum(root, record))

		got, err := store.GetChecksum(root, "v2-test", domain.ImageBase, "setup.py")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = store.GetChecksum(root, "main", domain.ImageWWW, "setup.py")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("get corrupt", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, store.PutChecksum(root, record))

		dir := filepath.Join(root, domain.DefaultChecksumsPath())
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		err = os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{ invalid json"), 0o600)
		require.NoError(t, err)

		_, err = store.GetChecksum(root, "main", domain.ImageBase, "setup.py")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
	})
}

func TestStoreMarkers(t *testing.T) {
	t.Parallel()

	store, err := state.NewStore()
	require.NoError(t, err)

	marker := domain.BuildMarker{
		Branch:  "main",
		Image:   domain.ImageFinal,
		Python:  "3.12",
		Tag:     "zephyr:main-python3.12",
		BuiltAt: time.Now().Truncate(time.Second),
	}

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, store.PutMarker(root, marker))

		got, err := store.GetMarker(root, "main", domain.ImageFinal, "3.12")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, marker, *got)
	})

	t.Run("scoped by python version", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, store.PutMarker(root, marker))

		got, err := store.GetMarker(root, "main", domain.ImageFinal, "3.11")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list all", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, store.PutMarker(root, marker))

		other := marker
		other.Python = "3.11"
		other.Tag = "zephyr:main-python3.11"
		require.NoError(t, store.PutMarker(root, other))

		markers, err := store.Markers(root)
		require.NoError(t, err)
		assert.Len(t, markers, 2)
	})

	t.Run("list empty", func(t *testing.T) {
		t.Parallel()
		markers, err := store.Markers(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, markers)
	})
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	store, err := state.NewStore()
	require.NoError(t, err)

	root := t.TempDir()
	require.NoError(t, store.PutChecksum(root, domain.ChecksumRecord{
		Branch: "main", Image: domain.ImageBase, Path: "setup.py", Hash: "ab",
	}))
	require.NoError(t, store.PutMarker(root, domain.BuildMarker{
		Branch: "main", Image: domain.ImageBase, Python: "3.12",
	}))

	require.NoError(t, store.Clear(root))

	got, err := store.GetChecksum(root, "main", domain.ImageBase, "setup.py")
	require.NoError(t, err)
	assert.Nil(t, got)

	marker, err := store.GetMarker(root, "main", domain.ImageBase, "3.12")
	require.NoError(t, err)
	assert.Nil(t, marker)
}
