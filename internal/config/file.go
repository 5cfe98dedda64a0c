package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for YAML decoding. Durations are strings in
// time.ParseDuration form ("90s", "10m"). Absent fields keep their current
// value.
type fileConfig struct {
	Duration            string `yaml:"duration"`
	PollInterval        string `yaml:"poll_interval"`
	ReconnectInterval   string `yaml:"reconnect_interval"`
	ConnectivityTimeout string `yaml:"connectivity_timeout"`
	ConnectivityTarget  string `yaml:"connectivity_target"`
	SpeedURL            string `yaml:"speed_url"`
	DatabasePath        string `yaml:"database_path"`
	ReportDir           string `yaml:"report_dir"`
	Port                *int   `yaml:"port"`
}

// LoadFile applies the YAML file at path on top of cfg.
func LoadFile(path string, cfg Config) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	if err := applyDuration(&cfg.Duration, fc.Duration); err != nil {
		return cfg, fmt.Errorf("config %q: duration: %w", path, err)
	}
	if err := applyDuration(&cfg.PollInterval, fc.PollInterval); err != nil {
		return cfg, fmt.Errorf("config %q: poll_interval: %w", path, err)
	}
	if err := applyDuration(&cfg.ReconnectInterval, fc.ReconnectInterval); err != nil {
		return cfg, fmt.Errorf("config %q: reconnect_interval: %w", path, err)
	}
	if err := applyDuration(&cfg.ConnectivityTimeout, fc.ConnectivityTimeout); err != nil {
		return cfg, fmt.Errorf("config %q: connectivity_timeout: %w", path, err)
	}
	if fc.ConnectivityTarget != "" {
		cfg.ConnectivityTarget = fc.ConnectivityTarget
	}
	if fc.SpeedURL != "" {
		cfg.SpeedURL = fc.SpeedURL
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.ReportDir != "" {
		cfg.ReportDir = fc.ReportDir
	}
	if fc.Port != nil {
		cfg.Port = *fc.Port
	}

	return cfg, nil
}

func applyDuration(dst *time.Duration, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
