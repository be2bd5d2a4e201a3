// Package config resolves viper-backed application settings into the
// concrete values the commands consume.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/voxledger/vox/internal/anomaly"
)

// DatabasePath resolves the SQLite database location. Precedence is the
// --db flag, then database.path from the config file or VOX_DATABASE_PATH,
// then the default under the user's data directory.
func DatabasePath() (string, error) {
	if p := viper.GetString("database.path"); p != "" {
		return ExpandPath(p), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "vox", "vox.db"), nil
}

// AnomalyDetection builds the detector thresholds from configuration.
// Unset or non-positive values keep the defaults.
func AnomalyDetection() anomaly.Config {
	cfg := anomaly.DefaultConfig()
	if v := viper.GetFloat64("anomaly.zscore_threshold"); v > 0 {
		cfg.ZScoreThreshold = v
	}
	if v := viper.GetDuration("anomaly.duplicate_window"); v > 0 {
		cfg.DuplicateWindow = v
	}
	return cfg
}

// ExpandPath expands a leading ~ and $VAR environment references in a
// configured file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
