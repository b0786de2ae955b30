// Package config loads the analytics tuning file. The forecast heuristics
// (window size, overdue sigma multiplier, confidence thresholds) are product
// tunables, not physical constants, so they live here rather than in code.
package config

import (
	"fmt"
	"os"

	"github.com/leona-app/analytics/forecast"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Forecast forecast.Config `yaml:"forecast"`

	// ReferenceDataPath points at the LMS dataset the refdata loader reads
	// at process start.
	ReferenceDataPath string `yaml:"reference_data_path"`
}

// Load reads and parses the config file at path. Missing fields are filled
// with the shipped defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("analytics config: read %q: %w", path, err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analytics config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("analytics config: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Forecast: *forecast.DefaultConfig(),
	}
}

func validate(cfg *Config) error {
	f := cfg.Forecast
	if f.WindowSize < forecast.MinForecastRecords {
		return fmt.Errorf("forecast.window_size %d is below the minimum %d",
			f.WindowSize, forecast.MinForecastRecords)
	}
	if f.SigmaMultiplier < 0 {
		return fmt.Errorf("forecast.sigma_multiplier %v is negative", f.SigmaMultiplier)
	}
	if f.CVHighMax <= 0 || f.CVMediumMax <= f.CVHighMax {
		return fmt.Errorf("forecast confidence thresholds must satisfy 0 < cv_high_max < cv_medium_max, got %v and %v",
			f.CVHighMax, f.CVMediumMax)
	}
	return nil
}
