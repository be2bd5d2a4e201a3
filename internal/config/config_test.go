package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("VOX_TEST_DIR", "/data")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain", input: "/var/lib/vox.db", want: "/var/lib/vox.db"},
		{name: "env var", input: "$VOX_TEST_DIR/vox.db", want: "/data/vox.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := filepath.Abs(t.TempDir())
	require.NoError(t, err)
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "vox.db"), ExpandPath("~/vox.db"))
	assert.Equal(t, home, ExpandPath("~"))
}

func TestDatabasePathConfigured(t *testing.T) {
	viper.Set("database.path", "/tmp/custom/vox.db")
	defer viper.Reset()

	path, err := DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom/vox.db", path)
}

func TestDatabasePathDefault(t *testing.T) {
	viper.Reset()
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "vox", "vox.db"), path)
}

func TestAnomalyDetectionDefaults(t *testing.T) {
	viper.Reset()

	cfg := AnomalyDetection()
	assert.Equal(t, 3.0, cfg.ZScoreThreshold)
	assert.Equal(t, 5*time.Minute, cfg.DuplicateWindow)
}

func TestAnomalyDetectionOverrides(t *testing.T) {
	viper.Set("anomaly.zscore_threshold", 2.5)
	viper.Set("anomaly.duplicate_window", "10m")
	defer viper.Reset()

	cfg := AnomalyDetection()
	assert.Equal(t, 2.5, cfg.ZScoreThreshold)
	assert.Equal(t, 10*time.Minute, cfg.DuplicateWindow)
}
