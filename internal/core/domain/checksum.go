package domain

import "time"

// ChecksumRecord is the persisted content hash of one tracked file, scoped
// by branch and image type. Exactly one record exists per
// (branch, image type, tracked file) triple.
type ChecksumRecord struct {
	Branch     string    `json:"branch"`
	Image      ImageType `json:"image"`
	Path       string    `json:"path"`
	Hash       string    `json:"hash"`
	ComputedAt time.Time `json:"computed_at"`
}

// BuildMarker records that an image type was successfully built for a
// branch and Python version. Consulted to skip redundant builds; removed
// only by an explicit cache clear.
type BuildMarker struct {
	Branch  string    `json:"branch"`
	Image   ImageType `json:"image"`
	Python  string    `json:"python"`
	Tag     string    `json:"tag"`
	BuiltAt time.Time `json:"built_at"`
}

// FileStatus is the comparison result for one tracked file.
type FileStatus struct {
	Path        string
	CurrentHash string
	StoredHash  string
}

// Changed reports whether the stored hash is missing or differs from the
// current content hash.
func (f FileStatus) Changed() bool {
	return f.StoredHash == "" || f.StoredHash != f.CurrentHash
}

// ImageDecision aggregates per-file comparisons for one image type.
type ImageDecision struct {
	Image  ImageType
	Python string
	Files  []FileStatus
	// Forced marks a decision overridden by the force flag.
	Forced bool
	// MarkerMissing is set when no successful build is on record for the
	// (branch, image, python) combination even though checksums match.
	MarkerMissing bool
}

// NeedsRebuild reports whether the image must be rebuilt.
func (d ImageDecision) NeedsRebuild() bool {
	if d.Forced || d.MarkerMissing {
		return true
	}
	for _, f := range d.Files {
		if f.Changed() {
			return true
		}
	}
	return false
}

// ChangedFiles returns the tracked files whose content changed.
func (d ImageDecision) ChangedFiles() []string {
	var changed []string
	for _, f := range d.Files {
		if f.Changed() {
			changed = append(changed, f.Path)
		}
	}
	return changed
}

// Decision is the rebuild verdict for a whole run, in build order.
type Decision struct {
	Branch string
	Images []ImageDecision
}

// NeedingRebuild returns the image types that must be rebuilt, preserving
// build order.
func (d Decision) NeedingRebuild() []ImageType {
	var images []ImageType
	for _, img := range d.Images {
		if img.NeedsRebuild() {
			images = append(images, img.Image)
		}
	}
	return images
}
