package config

import "time"

// Config holds runtime settings for the admin CLI.
type Config struct {
	ServerURL string
	Timeout   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.Timeout = 10 * time.Second
}

// GlobalFlags are the flags consumed by LoadConfig; everything else on the
// command line belongs to the subcommand.
var GlobalFlags = []string{"-a", "-t", "-c", "-config", "--config"}

// LoadConfig builds a Config from defaults, an optional JSON file, the
// environment and the global flags found in args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
