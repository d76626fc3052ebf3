package timing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("testdata/timing.yaml")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MinTrials)
	require.NotNil(t, cfg.Slack)
	assert.Equal(t, 0.0001, *cfg.Slack)

	h := New(cfg.Options()...)
	assert.Equal(t, 5, h.minTrials)
	assert.Equal(t, 0.0001, h.slack)
}

func TestParseConfig_PartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("min_trials: 3\n"))
	require.NoError(t, err)

	h := New(cfg.Options()...)
	assert.Equal(t, 3, h.minTrials)
	assert.Equal(t, DefaultSlack, h.slack)
}

func TestParseConfig_ZeroSlack(t *testing.T) {
	cfg, err := ParseConfig([]byte("slack: 0\n"))
	require.NoError(t, err)

	h := New(cfg.Options()...)
	assert.Equal(t, 0.0, h.slack)
	assert.Equal(t, DefaultMinTrials, h.minTrials)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown field", "min_trial: 3\n", "failed to parse YAML"},
		{"negative trials", "min_trials: -1\n", "min_trials must be non-negative"},
		{"negative slack", "slack: -0.5\n", "slack must be non-negative"},
		{"wrong type", "slack: fast\n", "failed to parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
