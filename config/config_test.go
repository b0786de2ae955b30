package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analytics.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "reference_data_path: /data/lms.yaml\n"))
		require.NoError(t, err)
		require.Equal(t, "/data/lms.yaml", cfg.ReferenceDataPath)
		require.Equal(t, 10, cfg.Forecast.WindowSize)
		require.InDelta(t, 2.0, cfg.Forecast.SigmaMultiplier, 1e-9)
		require.InDelta(t, 0.15, cfg.Forecast.CVHighMax, 1e-9)
		require.InDelta(t, 0.35, cfg.Forecast.CVMediumMax, 1e-9)
	})

	t.Run("Overrides", func(t *testing.T) {
		content := `
forecast:
  window_size: 16
  sigma_multiplier: 1.5
`
		cfg, err := Load(writeConfig(t, content))
		require.NoError(t, err)
		require.Equal(t, 16, cfg.Forecast.WindowSize)
		require.InDelta(t, 1.5, cfg.Forecast.SigmaMultiplier, 1e-9)
		// untouched fields keep their defaults
		require.InDelta(t, 0.35, cfg.Forecast.CVMediumMax, 1e-9)
	})

	t.Run("WindowTooSmall", func(t *testing.T) {
		_, err := Load(writeConfig(t, "forecast:\n  window_size: 1\n"))
		require.Error(t, err)
	})

	t.Run("BadThresholdOrder", func(t *testing.T) {
		content := `
forecast:
  cv_high_max: 0.5
  cv_medium_max: 0.3
`
		_, err := Load(writeConfig(t, content))
		require.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
