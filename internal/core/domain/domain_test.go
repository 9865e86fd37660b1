package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zephyr-ci/zephyr/internal/core/domain"
)

func TestParseImageType(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"base", "www", "final"} {
		img, err := domain.ParseImageType(valid)
		require.NoError(t, err)
		assert.Equal(t, domain.ImageType(valid), img)
	}

	_, err := domain.ParseImageType("production")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownImageType.Error())
}

func TestParseCacheDirective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  domain.CacheDirective
	}{
		{input: "", want: domain.CacheLocal},
		{input: "auto", want: domain.CacheLocal},
		{input: "local", want: domain.CacheLocal},
		{input: "pull", want: domain.CachePull},
		{input: "none", want: domain.CacheNone},
	}

	for _, tt := range tests {
		got, err := domain.ParseCacheDirective(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := domain.ParseCacheDirective("registry")
	require.Error(t, err)
}

func TestParseAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  domain.Answer
	}{
		{input: "y", want: domain.AnswerYes},
		{input: "YES", want: domain.AnswerYes},
		{input: " yes ", want: domain.AnswerYes},
		{input: "n", want: domain.AnswerNo},
		{input: "No", want: domain.AnswerNo},
		{input: "q", want: domain.AnswerQuit},
		{input: "Quit", want: domain.AnswerQuit},
	}

	for _, tt := range tests {
		got, err := domain.ParseAnswer(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	_, err := domain.ParseAnswer("maybe")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidAnswer.Error())
}

func TestFileStatusChanged(t *testing.T) {
	t.Parallel()

	assert.False(t, domain.FileStatus{CurrentHash: "a", StoredHash: "a"}.Changed())
	assert.True(t, domain.FileStatus{CurrentHash: "a", StoredHash: "b"}.Changed())
	// A missing stored hash always means rebuild.
	assert.True(t, domain.FileStatus{CurrentHash: "a", StoredHash: ""}.Changed())
}

func TestImageDecision(t *testing.T) {
	t.Parallel()

	t.Run("unchanged files need no rebuild", func(t *testing.T) {
		t.Parallel()
		d := domain.ImageDecision{
			Image: domain.ImageBase,
			Files: []domain.FileStatus{
				{Path: "setup.py", CurrentHash: "a", StoredHash: "a"},
				{Path: "Dockerfile", CurrentHash: "b", StoredHash: "b"},
			},
		}
		assert.False(t, d.NeedsRebuild())
		assert.Empty(t, d.ChangedFiles())
	})

	t.Run("single changed file triggers rebuild", func(t *testing.T) {
		t.Parallel()
		d := domain.ImageDecision{
			Image: domain.ImageBase,
			Files: []domain.FileStatus{
				{Path: "setup.py", CurrentHash: "a", StoredHash: "a"},
				{Path: "Dockerfile", CurrentHash: "b2", StoredHash: "b"},
			},
		}
		assert.True(t, d.NeedsRebuild())
		assert.Equal(t, []string{"Dockerfile"}, d.ChangedFiles())
	})

	t.Run("force overrides unchanged files", func(t *testing.T) {
		t.Parallel()
		d := domain.ImageDecision{
			Image:  domain.ImageFinal,
			Forced: true,
			Files: []domain.FileStatus{
				{Path: "setup.py", CurrentHash: "a", StoredHash: "a"},
			},
		}
		assert.True(t, d.NeedsRebuild())
	})

	t.Run("missing marker triggers rebuild", func(t *testing.T) {
		t.Parallel()
		d := domain.ImageDecision{
			Image:         domain.ImageWWW,
			MarkerMissing: true,
			Files: []domain.FileStatus{
				{Path: "setup.py", CurrentHash: "a", StoredHash: "a"},
			},
		}
		assert.True(t, d.NeedsRebuild())
	})
}

func TestDecisionNeedingRebuild(t *testing.T) {
	t.Parallel()

	d := domain.Decision{
		Branch: "main",
		Images: []domain.ImageDecision{
			{Image: domain.ImageBase, Files: []domain.FileStatus{{Path: "a", CurrentHash: "x", StoredHash: "x"}}},
			{Image: domain.ImageWWW, Files: []domain.FileStatus{{Path: "a", CurrentHash: "x", StoredHash: "y"}}},
			{Image: domain.ImageFinal, Forced: true},
		},
	}

	assert.Equal(t, []domain.ImageType{domain.ImageWWW, domain.ImageFinal}, d.NeedingRebuild())
}

func TestProjectReferences(t *testing.T) {
	t.Parallel()

	p := &domain.Project{
		Name:                 "zephyr",
		Registry:             "ghcr.io/acme",
		Branch:               "main",
		DefaultPythonVersion: "3.12",
	}

	assert.Equal(t, "ghcr.io/acme/zephyr-base:main-python3.12", p.ImageReference(domain.ImageBase, "3.12"))
	assert.Equal(t, "ghcr.io/acme/zephyr-www:main-python3.11", p.ImageReference(domain.ImageWWW, "3.11"))
	assert.Equal(t, "ghcr.io/acme/zephyr:main-python3.12", p.ImageReference(domain.ImageFinal, "3.12"))
	assert.Equal(t, "ghcr.io/acme/zephyr:main", p.DefaultReference())

	bare := &domain.Project{Name: "zephyr", Branch: "dev"}
	assert.Equal(t, "zephyr-base:dev-python3.12", bare.ImageReference(domain.ImageBase, "3.12"))
	assert.Equal(t, "zephyr:dev", bare.DefaultReference())
}

func TestBuildOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []domain.ImageType{domain.ImageBase, domain.ImageWWW, domain.ImageFinal}, domain.BuildOrder())
}

func TestResolveSettings(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		domain.EnvCI:          "true",
		domain.EnvForceAnswer: "no",
		domain.EnvForceBuild:  "1",
		domain.EnvBranch:      "v2-10-test",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	s := domain.ResolveSettings(lookup)
	assert.True(t, s.CI)
	assert.Equal(t, "no", s.ForcedAnswer)
	assert.True(t, s.ForceBuild)
	assert.Equal(t, "v2-10-test", s.Branch)
	assert.False(t, s.Verbose)

	empty := domain.ResolveSettings(func(string) (string, bool) { return "", false })
	assert.False(t, empty.CI)
	assert.Empty(t, empty.ForcedAnswer)
}
