package ports

import "github.com/zephyr-ci/zephyr/internal/core/domain"

// ChecksumStore persists tracked-file checksums and build markers under the
// project state directory. One record exists per (branch, image, path).
//
//go:generate mockgen -source=checksum_store.go -destination=mocks/mock_checksum_store.go -package=mocks
type ChecksumStore interface {
	// GetChecksum retrieves the stored record for a tracked file.
	// Returns nil, nil if no record exists.
	GetChecksum(root, branch string, image domain.ImageType, path string) (*domain.ChecksumRecord, error)

	// PutChecksum stores a record, atomically replacing any previous one.
	PutChecksum(root string, record domain.ChecksumRecord) error

	// GetMarker retrieves the build marker for a branch, image and Python
	// version. Returns nil, nil if no marker exists.
	GetMarker(root, branch string, image domain.ImageType, python string) (*domain.BuildMarker, error)

	// PutMarker stores a build marker after a successful build.
	PutMarker(root string, marker domain.BuildMarker) error

	// Markers lists all stored build markers.
	Markers(root string) ([]domain.BuildMarker, error)

	// Clear removes all checksum records and build markers.
	Clear(root string) error
}
