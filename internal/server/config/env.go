package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvHTTPAddr             = "SW_HTTP_ADDR"
	EnvGRPCAddr             = "SW_GRPC_ADDR"
	EnvDatabaseDSN          = "DATABASE_DSN"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogBackend           = "LOG_BACKEND"
	EnvSlowRequestThreshold = "SLOW_REQUEST_THRESHOLD"
	EnvReadinessInterval    = "READINESS_INTERVAL"
	EnvSeedSource           = "SEED_SOURCE"
	EnvS3User               = "S3_USER"
	EnvS3Password           = "S3_PASSWORD"
	EnvS3Region             = "S3_REGION"
	EnvS3BaseEndpoint       = "S3_ENDPOINT"
)

// dotEnvFiles are loaded before the environment is read. Variables already
// set in the process environment win over the file.
var dotEnvFiles = []string{".env"}

func parseEnv(config *Config) error {
	for _, f := range dotEnvFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	strs := map[string]*string{
		EnvHTTPAddr:       &config.EndpointAddrHTTP,
		EnvGRPCAddr:       &config.EndpointAddrGRPC,
		EnvDatabaseDSN:    &config.DatabaseDSN,
		EnvLogLevel:       &config.LogLevel,
		EnvLogBackend:     &config.LogBackend,
		EnvSeedSource:     &config.SeedSource,
		EnvS3User:         &config.S3User,
		EnvS3Password:     &config.S3Password,
		EnvS3Region:       &config.S3Region,
		EnvS3BaseEndpoint: &config.S3BaseEndpoint,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	durations := map[string]*time.Duration{
		EnvSlowRequestThreshold: &config.SlowRequestThreshold,
		EnvReadinessInterval:    &config.ReadinessInterval,
	}
	for name, dst := range durations {
		v, ok := os.LookupEnv(name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = d
	}
	return nil
}
