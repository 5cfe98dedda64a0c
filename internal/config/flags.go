package config

import "flag"

// ParseFlags parses command-line flags and returns a Config. When -config is
// given, the YAML file is applied first and explicitly set flags win over it.
func ParseFlags() (Config, error) {
	def := Default()

	var (
		configPath        = flag.String("config", "", "Optional YAML config file")
		duration          = flag.Duration("duration", def.Duration, "Total monitoring duration")
		interval          = flag.Duration("interval", def.PollInterval, "Time between measurement cycles")
		reconnectInterval = flag.Duration("reconnect-interval", def.ReconnectInterval, "Re-poll interval while disconnected")
		timeout           = flag.Duration("timeout", def.ConnectivityTimeout, "Connectivity check timeout")
		target            = flag.String("target", def.ConnectivityTarget, "Connectivity check target (host:port)")
		speedURL          = flag.String("speed-url", def.SpeedURL, "Speed measurement URL")
		dbPath            = flag.String("db", def.DatabasePath, "Sqlite recording path (empty disables recording)")
		reportDir         = flag.String("report-dir", def.ReportDir, "Report output directory")
		port              = flag.Int("port", def.Port, "Web API port (0 disables)")
	)
	flag.Parse()

	cfg := def
	if *configPath != "" {
		loaded, err := LoadFile(*configPath, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			cfg.Duration = *duration
		case "interval":
			cfg.PollInterval = *interval
		case "reconnect-interval":
			cfg.ReconnectInterval = *reconnectInterval
		case "timeout":
			cfg.ConnectivityTimeout = *timeout
		case "target":
			cfg.ConnectivityTarget = *target
		case "speed-url":
			cfg.SpeedURL = *speedURL
		case "db":
			cfg.DatabasePath = *dbPath
		case "report-dir":
			cfg.ReportDir = *reportDir
		case "port":
			cfg.Port = *port
		}
	})

	return cfg, nil
}
