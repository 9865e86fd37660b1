// Package state implements the on-disk checksum and build marker store.
//
// Records live under <root>/.zephyr as one JSON file per record, keyed by a
// hash of (branch, image, path). No cross-process locking is provided; two
// concurrent runs may race on the same record, the last writer wins.
package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zephyr-ci/zephyr/internal/core/domain"
	"github.com/zephyr-ci/zephyr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ChecksumStore = (*Store)(nil)

// Store implements ports.ChecksumStore using a file-per-record strategy.
type Store struct{}

// NewStore creates a new checksum store. All operations take the project
// root explicitly, so the constructor has nothing to resolve.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// GetChecksum retrieves the stored record for a tracked file.
func (s *Store) GetChecksum(root, branch string, image domain.ImageType, path string) (*domain.ChecksumRecord, error) {
	var record domain.ChecksumRecord
	found, err := s.read(s.checksumFilename(root, branch, image, path), &record)
	if err != nil || !found {
		return nil, err
	}
	return &record, nil
}

// PutChecksum stores a record, atomically replacing any previous one.
func (s *Store) PutChecksum(root string, record domain.ChecksumRecord) error {
	filename := s.checksumFilename(root, record.Branch, record.Image, record.Path)
	return s.write(filename, record)
}

// GetMarker retrieves the build marker for a branch, image and Python version.
func (s *Store) GetMarker(root, branch string, image domain.ImageType, python string) (*domain.BuildMarker, error) {
	var marker domain.BuildMarker
	found, err := s.read(s.markerFilename(root, branch, image, python), &marker)
	if err != nil || !found {
		return nil, err
	}
	return &marker, nil
}

// PutMarker stores a build marker after a successful build.
func (s *Store) PutMarker(root string, marker domain.BuildMarker) error {
	filename := s.markerFilename(root, marker.Branch, marker.Image, marker.Python)
	return s.write(filename, marker)
}

// Markers lists all stored build markers.
func (s *Store) Markers(root string) ([]domain.BuildMarker, error) {
	dir := filepath.Join(root, domain.DefaultMarkersPath())
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var markers []domain.BuildMarker
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		var marker domain.BuildMarker
		found, err := s.read(filepath.Join(dir, entry.Name()), &marker)
		if err != nil {
			return nil, err
		}
		if found {
			markers = append(markers, marker)
		}
	}
	return markers, nil
}

// Clear removes all checksum records and build markers.
func (s *Store) Clear(root string) error {
	var errs error
	for _, dir := range []string{domain.DefaultChecksumsPath(), domain.DefaultMarkersPath()} {
		if err := os.RemoveAll(filepath.Join(root, dir)); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to clear state directory"), "dir", dir))
		}
	}
	return errs
}

// read loads a JSON record. Returns false with a nil error when the file
// does not exist.
func (s *Store) read(filename string, target any) (bool, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	if err := json.Unmarshal(data, target); err != nil {
		return false, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	return true, nil
}

// write marshals a record and replaces the target file atomically via a
// temp file and rename, so a crashed run never leaves a half-written record.
func (s *Store) write(filename string, record any) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, ".record-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	if err := os.Rename(tmpName, filename); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

func (s *Store) checksumFilename(root, branch string, image domain.ImageType, path string) string {
	key := hashKey(branch, string(image), path)
	return filepath.Join(root, domain.DefaultChecksumsPath(), key+".json")
}

func (s *Store) markerFilename(root, branch string, image domain.ImageType, python string) string {
	key := hashKey(branch, string(image), python)
	return filepath.Join(root, domain.DefaultMarkersPath(), key+".json")
}

// hashKey derives a filesystem-safe filename from record key parts. Parts
// are NUL-separated so ("a", "bc") and ("ab", "c") cannot collide.
func hashKey(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
