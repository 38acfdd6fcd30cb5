package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sensitivewords/internal/flagx"
	"github.com/dmitrijs2005/sensitivewords/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept both
// "1s"-style strings and integer nanoseconds. Absent fields keep the value
// already in Config.
type JsonConfig struct {
	EndpointAddrHTTP     *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC     *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN          *string         `json:"database_dsn"`
	LogLevel             *string         `json:"log_level"`
	LogBackend           *string         `json:"log_backend"`
	SlowRequestThreshold *timex.Duration `json:"slow_request_threshold"`
	ReadinessInterval    *timex.Duration `json:"readiness_interval"`
	SeedSource           *string         `json:"seed_source"`
	S3User               *string         `json:"s3_user"`
	S3Password           *string         `json:"s3_password"`
	S3Region             *string         `json:"s3_region"`
	S3BaseEndpoint       *string         `json:"s3_base_endpoint"`
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return err
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogBackend, c.LogBackend)
	if c.SlowRequestThreshold != nil {
		config.SlowRequestThreshold = c.SlowRequestThreshold.Duration
	}
	if c.ReadinessInterval != nil {
		config.ReadinessInterval = c.ReadinessInterval.Duration
	}
	setString(&config.SeedSource, c.SeedSource)
	setString(&config.S3User, c.S3User)
	setString(&config.S3Password, c.S3Password)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	return nil
}
