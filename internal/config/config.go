package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Store backends
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config is the process configuration, read from the environment and then
// overridden by flags
type Config struct {
	HTTPAddr  string
	StaticDir string

	StoreBackend string
	DataDir      string

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	CatalogFile string

	JWTSecret string
	TokenTTL  time.Duration

	VenueLocation *time.Location

	CORSOrigins []string
}

// FromEnv reads the configuration from the environment, applying defaults
func FromEnv() (Config, error) {
	var c Config
	c.HTTPAddr = envOr("HTTP_ADDR", ":3001")
	c.StaticDir = strings.TrimSpace(os.Getenv("STATIC_DIR"))

	c.StoreBackend = strings.ToLower(envOr("STORE_BACKEND", StoreFile))
	c.DataDir = envOr("DATA_DIR", "data")

	c.RedisAddr = envOr("REDIS_ADDR", "localhost:6379")
	c.RedisPassword = os.Getenv("REDIS_PASSWORD")
	c.RedisKeyPrefix = envOr("REDIS_KEY_PREFIX", "sportsmeet:")
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return c, fmt.Errorf("REDIS_DB: %w", err)
		}
		c.RedisDB = db
	}

	c.CatalogFile = strings.TrimSpace(os.Getenv("CATALOG_FILE"))

	c.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if c.JWTSecret == "" {
		c.JWTSecret = "change-me"
	}
	ttl, err := time.ParseDuration(envOr("TOKEN_TTL", "12h"))
	if err != nil {
		return c, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	if ttl <= 0 {
		return c, fmt.Errorf("TOKEN_TTL must be positive")
	}
	c.TokenTTL = ttl

	c.VenueLocation = time.Local
	if name := strings.TrimSpace(os.Getenv("VENUE_TIMEZONE")); name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return c, fmt.Errorf("VENUE_TIMEZONE: %w", err)
		}
		c.VenueLocation = loc
	}

	c.CORSOrigins = parseList(envOr("CORS_ORIGINS", "*"))

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// AddFlags registers command-line overrides for the settings most often
// changed per run. Environment values become the flag defaults.
func (c *Config) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.HTTPAddr, "addr", c.HTTPAddr, "listen address")
	flagSet.StringVar(&c.StaticDir, "static-dir", c.StaticDir, "directory of the built frontend to serve")
	flagSet.StringVar(&c.StoreBackend, "store", c.StoreBackend, "document store: file, redis or memory")
	flagSet.StringVar(&c.DataDir, "data-dir", c.DataDir, "directory of the JSON data files for the file store")
	flagSet.StringVar(&c.CatalogFile, "catalog", c.CatalogFile, "catalog YAML replacing the built-in one")
}

// Validate checks settings that flags may have changed
func (c *Config) Validate() error {
	c.StoreBackend = strings.ToLower(c.StoreBackend)
	switch c.StoreBackend {
	case StoreFile, StoreRedis, StoreMemory:
	default:
		return fmt.Errorf("store backend %q is not one of file, redis, memory", c.StoreBackend)
	}
	if c.StoreBackend == StoreFile && c.DataDir == "" {
		return fmt.Errorf("file store needs a data directory")
	}
	return nil
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func parseList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
