package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "STORE_BACKEND", "DATA_DIR", "REDIS_DB", "TOKEN_TTL", "VENUE_TIMEZONE", "CORS_ORIGINS", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":3001", c.HTTPAddr)
	assert.Equal(t, StoreFile, c.StoreBackend)
	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, 12*time.Hour, c.TokenTTL)
	assert.Equal(t, time.Local, c.VenueLocation)
	assert.Equal(t, []string{"*"}, c.CORSOrigins)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("VENUE_TIMEZONE", "UTC")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://meet.example.com,")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, StoreRedis, c.StoreBackend)
	assert.Equal(t, 2, c.RedisDB)
	assert.Equal(t, 30*time.Minute, c.TokenTTL)
	assert.Equal(t, "UTC", c.VenueLocation.String())
	assert.Equal(t, []string{"http://localhost:3000", "https://meet.example.com"}, c.CORSOrigins)
}

func TestFromEnvRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("TOKEN_TTL", "soon")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("HTTP_ADDR", ":8080")

	c, err := FromEnv()
	require.NoError(t, err)

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.AddFlags(flagSet)
	require.NoError(t, flagSet.Parse([]string{"--store", "Memory", "--catalog", "meet.yaml"}))
	require.NoError(t, c.Validate())

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, StoreMemory, c.StoreBackend)
	assert.Equal(t, "meet.yaml", c.CatalogFile)
}

func TestValidateRejectsEmptyDataDir(t *testing.T) {
	c := Config{StoreBackend: StoreFile}
	assert.Error(t, c.Validate())

	c.StoreBackend = "sqlite"
	assert.Error(t, c.Validate())
}

func TestFromEnvFileStoreWithDataDir(t *testing.T) {
	t.Setenv("STORE_BACKEND", "file")
	t.Setenv("DATA_DIR", "/tmp/sportsmeet")
	t.Setenv("TOKEN_TTL", "")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, StoreFile, c.StoreBackend)
	assert.Equal(t, "/tmp/sportsmeet", c.DataDir)
}
