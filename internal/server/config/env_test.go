package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	clearEnv(t)

	t.Setenv(EnvHTTPAddr, " :7000 ")
	t.Setenv(EnvLogBackend, "zap")
	t.Setenv(EnvSlowRequestThreshold, "1500ms")
	t.Setenv(EnvSeedSource, "file://~/words.txt")
	t.Setenv(EnvS3BaseEndpoint, "")

	c := defaults()
	require.NoError(t, parseEnv(c))

	assert.Equal(t, ":7000", c.EndpointAddrHTTP)
	assert.Equal(t, "zap", c.LogBackend)
	assert.Equal(t, 1500*time.Millisecond, c.SlowRequestThreshold)
	assert.Equal(t, "file://~/words.txt", c.SeedSource)
	assert.Equal(t, "http://127.0.0.1:9000/", c.S3BaseEndpoint, "empty value keeps default")
}

func TestParseEnv_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_DSN=postgres://dotenv\nLOG_LEVEL=debug\n"), 0o600))
	clearEnv(t, path)

	t.Setenv(EnvLogLevel, "error")

	c := defaults()
	require.NoError(t, parseEnv(c))

	assert.Equal(t, "postgres://dotenv", c.DatabaseDSN)
	assert.Equal(t, "error", c.LogLevel, "process environment wins over .env")
}

func TestParseEnv_MissingDotEnvIgnored(t *testing.T) {
	clearEnv(t, filepath.Join(t.TempDir(), "nope.env"))

	c := defaults()
	require.NoError(t, parseEnv(c))
	assert.Equal(t, defaults(), c)
}

func TestParseEnv_BadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSlowRequestThreshold, "fast")

	err := parseEnv(defaults())
	assert.ErrorContains(t, err, EnvSlowRequestThreshold)
}
