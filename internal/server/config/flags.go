package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/sensitivewords/internal/flagx"
)

// parseFlags overrides Config fields from command-line flags.
//
//	-a string          HTTP bind address (":8080")
//	-g string          gRPC health bind address (":50051")
//	-d string          PostgreSQL DSN
//	-l string          log level: debug, info, warn, error
//	-log-backend       slog or zap
//	-slow duration     slow request warning threshold
//	-ready duration    gRPC readiness probe interval
//	-seed string       word list imported at startup (file://... or s3://bucket/key)
//	-s3-user, -s3-password, -s3-region, -s3-endpoint
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{
		"-a", "-g", "-d", "-l", "-log-backend", "-slow", "-ready", "-seed",
		"-s3-user", "-s3-password", "-s3-region", "-s3-endpoint",
	})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogBackend, "log-backend", config.LogBackend, "log backend (slog|zap)")
	fs.DurationVar(&config.SlowRequestThreshold, "slow", config.SlowRequestThreshold, "slow request threshold")
	fs.DurationVar(&config.ReadinessInterval, "ready", config.ReadinessInterval, "readiness probe interval")
	fs.StringVar(&config.SeedSource, "seed", config.SeedSource, "seed word list source")
	fs.StringVar(&config.S3User, "s3-user", config.S3User, "S3 access key")
	fs.StringVar(&config.S3Password, "s3-password", config.S3Password, "S3 secret key")
	fs.StringVar(&config.S3Region, "s3-region", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "s3-endpoint", config.S3BaseEndpoint, "S3 base endpoint")

	return fs.Parse(args)
}
