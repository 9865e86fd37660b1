package decider_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zephyr-ci/zephyr/internal/core/domain"
	"github.com/zephyr-ci/zephyr/internal/core/ports/mocks"
	"github.com/zephyr-ci/zephyr/internal/engine/decider"
	"go.uber.org/mock/gomock"
)

type deciderTestMocks struct {
	hasher *mocks.MockHasher
	store  *mocks.MockChecksumStore
	logger *mocks.MockLogger
}

func setupDeciderTest(t *testing.T) (*decider.Decider, deciderTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := deciderTestMocks{
		hasher: mocks.NewMockHasher(ctrl),
		store:  mocks.NewMockChecksumStore(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	return decider.NewDecider(m.hasher, m.store, m.logger), m
}

func testProject() *domain.Project {
	return &domain.Project{
		Root:                 "/work/demo",
		Name:                 "demo",
		Registry:             "ghcr.io/acme",
		Branch:               "main",
		PythonVersions:       []string{"3.11", "3.12"},
		DefaultPythonVersion: "3.12",
		Images: map[domain.ImageType]domain.ImageConfig{
			domain.ImageBase: {
				TrackedFiles: []string{"Dockerfile", "setup.py"},
			},
		},
	}
}

func storedRecord(path, hash string) *domain.ChecksumRecord {
	return &domain.ChecksumRecord{
		Branch: "main",
		Image:  domain.ImageBase,
		Path:   path,
		Hash:   hash,
	}
}

func TestDecideUnchangedFilesNoRebuild(t *testing.T) {
	d, m := setupDeciderTest(t)
	project := testProject()

	m.hasher.EXPECT().ComputeFileHash("/work/demo/Dockerfile").Return("aaaa", nil)
	m.hasher.EXPECT().ComputeFileHash("/work/demo/setup.py").Return("bbbb", nil)
	m.store.EXPECT().GetChecksum("/work/demo", "main", domain.ImageBase, "Dockerfile").
		Return(storedRecord("Dockerfile", "aaaa"), nil)
	m.store.EXPECT().GetChecksum("/work/demo", "main", domain.ImageBase, "setup.py").
		Return(storedRecord("setup.py", "bbbb"), nil)
	m.store.EXPECT().GetMarker("/work/demo", "main", domain.ImageBase, "3.12").
		Return(&domain.BuildMarker{Branch: "main", Image: domain.ImageBase, Python: "3.12"}, nil)

	decision, err := d.Decide(context.Background(), project, "3.12", []domain.ImageType{domain.ImageBase}, false)
	require.NoError(t, err)

	require.Len(t, decision.Images, 1)
	assert.False(t, decision.Images[0].NeedsRebuild())
	assert.Empty(t, decision.NeedingRebuild())
}

func TestDecideChangedFileTriggersRebuild(t *testing.T) {
	d, m := setupDeciderTest(t)
	project := testProject()

	m.hasher.EXPECT().ComputeFileHash("/work/demo/Dockerfile").Return("aaaa", nil)
	m.hasher.EXPECT().ComputeFileHash("/work/demo/setup.py").Return("cccc", nil)
	m.store.EXPECT().GetChecksum("/work/demo", "main", domain.ImageBase, "Dockerfile").
		Return(storedRecord("Dockerfile", "aaaa"), nil)
	m.store.EXPECT().GetChecksum("/work/demo", "main", domain.ImageBase, "setup.py").
		Return(storedRecord("setup.py", "bbbb"), nil)
	m.store.EXPECT().GetMarker("/work/demo", "main", domain.ImageBase, "3.12").
		Return(&domain.BuildMarker{}, nil)

	decision, err := d.Decide(context.Background(), project, "3.12", []domain.ImageType{domain.ImageBase}, false)
	require.NoError(t, err)

	require.Len(t, decision.Images, 1)
	img := decision.Images[0]
	assert.True(t, img.NeedsRebuild())
	assert.Equal(t, []string{"setup.py"}, img.ChangedFiles())
}

func TestDecideMissingRecordTriggersRebuild(t *testing.T) {
	d, m := setupDeciderTest(t)
	project := testProject()

	m.hasher.EXPECT().ComputeFileHash(gomock.Any()).Return("aaaa", nil).Times(2)
	m.store.EXPECT().GetChecksum("/work/demo", "main", domain.ImageBase, "Dockerfile").
		Return(nil, nil)
	m.store.EXPECT().GetChecksum("/work/demo", "main", domain.ImageBase, "setup.py").
		Return(storedRecord("setup.py", "aaaa"), nil)
	m.store.EXPECT().GetMarker(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.BuildMarker{}, nil)

	decision, err := d.Decide(context.Background(), project, "3.12", []domain.ImageType{domain.ImageBase}, false)
	require.NoError(t, err)

	img := decision.Images[0]
	assert.True(t, img.NeedsRebuild())
	assert.Equal(t, []string{"Dockerfile"}, img.ChangedFiles())
}

func TestDecideMissingMarkerTriggersRebuild(t *testing.T) {
	d, m := setupDeciderTest(t)
	project := testProject()

	m.hasher.EXPECT().ComputeFileHash("/work/demo/Dockerfile").Return("aaaa", nil)
	m.hasher.EXPECT().ComputeFileHash("/work/demo/setup.py").Return("bbbb", nil)
	m.store.EXPECT().GetChecksum("/work/demo", "main", domain.ImageBase, "Dockerfile").
		Return(storedRecord("Dockerfile", "aaaa"), nil)
	m.store.EXPECT().GetChecksum("/work/demo", "main", domain.ImageBase, "setup.py").
		Return(storedRecord("setup.py", "bbbb"), nil)
	m.store.EXPECT().GetMarker("/work/demo", "main", domain.ImageBase, "3.12").
		Return(nil, nil)

	decision, err := d.Decide(context.Background(), project, "3.12", []domain.ImageType{domain.ImageBase}, false)
	require.NoError(t, err)

	img := decision.Images[0]
	assert.True(t, img.MarkerMissing)
	assert.True(t, img.NeedsRebuild())
	assert.Empty(t, img.ChangedFiles())
}

func TestDecideForcedRebuild(t *testing.T) {
	d, m := setupDeciderTest(t)
	project := testProject()

	m.hasher.EXPECT().ComputeFileHash(gomock.Any()).Return("aaaa", nil).Times(2)
	m.store.EXPECT().GetChecksum(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _ string, _ domain.ImageType, path string) (*domain.ChecksumRecord, error) {
			return storedRecord(path, "aaaa"), nil
		}).Times(2)
	m.store.EXPECT().GetMarker(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.BuildMarker{}, nil)

	decision, err := d.Decide(context.Background(), project, "3.12", []domain.ImageType{domain.ImageBase}, true)
	require.NoError(t, err)

	img := decision.Images[0]
	assert.True(t, img.Forced)
	assert.True(t, img.NeedsRebuild())
	assert.Empty(t, img.ChangedFiles())
}

func TestDecideHashErrorPropagates(t *testing.T) {
	d, m := setupDeciderTest(t)
	project := testProject()

	hashErr := errors.New("open Dockerfile: no such file")
	m.hasher.EXPECT().ComputeFileHash(gomock.Any()).Return("", hashErr).MinTimes(1)
	m.store.EXPECT().GetChecksum(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()

	_, err := d.Decide(context.Background(), project, "3.12", []domain.ImageType{domain.ImageBase}, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "no such file")
}

func TestDecideCorruptRecordTreatedAsChanged(t *testing.T) {
	d, m := setupDeciderTest(t)
	project := testProject()

	m.hasher.EXPECT().ComputeFileHash("/work/demo/Dockerfile").Return("aaaa", nil)
	m.hasher.EXPECT().ComputeFileHash("/work/demo/setup.py").Return("bbbb", nil)
	m.store.EXPECT().GetChecksum("/work/demo", "main", domain.ImageBase, "Dockerfile").
		Return(nil, errors.New("unexpected end of JSON input"))
	m.store.EXPECT().GetChecksum("/work/demo", "main", domain.ImageBase, "setup.py").
		Return(storedRecord("setup.py", "bbbb"), nil)
	m.store.EXPECT().GetMarker(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.BuildMarker{}, nil)

	decision, err := d.Decide(context.Background(), project, "3.12", []domain.ImageType{domain.ImageBase}, false)
	require.NoError(t, err)

	img := decision.Images[0]
	assert.True(t, img.NeedsRebuild())
	assert.Equal(t, []string{"Dockerfile"}, img.ChangedFiles())
}

func TestDecideUnknownImage(t *testing.T) {
	d, _ := setupDeciderTest(t)
	project := testProject()

	_, err := d.Decide(context.Background(), project, "3.12", []domain.ImageType{domain.ImageWWW}, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownImageType.Error())
}

func TestRecordPersistsCurrentHashes(t *testing.T) {
	d, m := setupDeciderTest(t)
	project := testProject()

	image := domain.ImageDecision{
		Image:  domain.ImageBase,
		Python: "3.12",
		Files: []domain.FileStatus{
			{Path: "Dockerfile", CurrentHash: "aaaa", StoredHash: "old"},
			{Path: "setup.py", CurrentHash: "bbbb"},
		},
	}

	var recorded []domain.ChecksumRecord
	m.store.EXPECT().PutChecksum("/work/demo", gomock.Any()).
		DoAndReturn(func(_ string, r domain.ChecksumRecord) error {
			recorded = append(recorded, r)
			return nil
		}).Times(2)

	require.NoError(t, d.Record(project, image))

	require.Len(t, recorded, 2)
	assert.Equal(t, "aaaa", recorded[0].Hash)
	assert.Equal(t, "main", recorded[0].Branch)
	assert.Equal(t, domain.ImageBase, recorded[0].Image)
	assert.Equal(t, "bbbb", recorded[1].Hash)
}

func TestRecordStoreErrorPropagates(t *testing.T) {
	d, m := setupDeciderTest(t)
	project := testProject()

	storeErr := errors.New("disk full")
	m.store.EXPECT().PutChecksum(gomock.Any(), gomock.Any()).Return(storeErr)

	image := domain.ImageDecision{
		Image: domain.ImageBase,
		Files: []domain.FileStatus{{Path: "Dockerfile", CurrentHash: "aaaa"}},
	}

	err := d.Record(project, image)
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
}
