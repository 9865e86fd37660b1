package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zephyr-ci/zephyr/internal/adapters/detector"
)

func TestDetectCI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		env      map[string]string
		expected bool
	}{
		{
			name:     "CI=true",
			env:      map[string]string{"CI": "true"},
			expected: true,
		},
		{
			name:     "CI=1",
			env:      map[string]string{"CI": "1"},
			expected: true,
		},
		{
			name:     "CI=false",
			env:      map[string]string{"CI": "false"},
			expected: false,
		},
		{
			name:     "GitHub Actions",
			env:      map[string]string{"GITHUB_ACTIONS": "true"},
			expected: true,
		},
		{
			name:     "GitLab CI",
			env:      map[string]string{"GITLAB_CI": "true"},
			expected: true,
		},
		{
			name:     "vendor flag set to false",
			env:      map[string]string{"CIRCLECI": "false"},
			expected: false,
		},
		{
			name:     "no CI markers",
			env:      map[string]string{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lookup := func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}
			assert.Equal(t, tt.expected, detector.DetectCI(lookup))
		})
	}
}
