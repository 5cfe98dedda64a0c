package config

import (
	"fmt"
	"time"
)

// Config holds all settings for one monitoring run.
type Config struct {
	Duration            time.Duration // total monitoring duration
	PollInterval        time.Duration // time between measurement cycles
	ReconnectInterval   time.Duration // re-poll cadence while disconnected
	ConnectivityTimeout time.Duration // dial timeout for the reachability check
	ConnectivityTarget  string        // host:port dialed by the reachability check
	SpeedURL            string        // HTTP endpoint used for throughput measurement
	DatabasePath        string        // sqlite recording sink, empty disables recording
	ReportDir           string        // directory for the report files
	Port                int           // web API port, 0 disables the server
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Duration:            10 * time.Minute,
		PollInterval:        60 * time.Second,
		ReconnectInterval:   5 * time.Second,
		ConnectivityTimeout: 3 * time.Second,
		ConnectivityTarget:  "8.8.8.8:53",
		SpeedURL:            "https://speed.cloudflare.com/__down?bytes=10000000",
		DatabasePath:        "wifi_monitor.db",
		ReportDir:           "reports",
		Port:                8080,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}
	if c.ReconnectInterval <= 0 {
		return fmt.Errorf("reconnect interval must be positive")
	}
	if c.ConnectivityTimeout <= 0 {
		return fmt.Errorf("connectivity timeout must be positive")
	}
	if c.ConnectivityTarget == "" {
		return fmt.Errorf("connectivity target cannot be empty")
	}
	if c.SpeedURL == "" {
		return fmt.Errorf("speed measurement URL cannot be empty")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	return nil
}
