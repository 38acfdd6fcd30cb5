package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	EnvServerURL = "SW_SERVER"
	EnvTimeout   = "SW_TIMEOUT"
)

func parseEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvServerURL)); v != "" {
		cfg.ServerURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	return nil
}
