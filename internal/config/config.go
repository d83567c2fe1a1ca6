// Package config loads runtime settings for the katas server and CLI from
// an optional YAML file, an optional .env file and the process environment,
// in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	// ErrBadConfig wraps every validation failure.
	ErrBadConfig = errors.New("config: invalid configuration")
)

// Config is the full runtime configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	KV        KVConfig        `yaml:"kv"`
	LRU       LRUConfig       `yaml:"lru"`
	Fetch     FetchConfig     `yaml:"fetch"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig selects level and format ("console" or "json").
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RateLimitConfig selects the limiter backend and its budget.
type RateLimitConfig struct {
	MaxRequests int           `yaml:"max_requests"`
	Window      time.Duration `yaml:"window"`
	Backend     string        `yaml:"backend"` // "memory" or "redis"
	RedisURL    string        `yaml:"redis_url"`
}

// KVConfig configures the TTL store.
type KVConfig struct {
	SweepInterval time.Duration `yaml:"sweep_interval"`
	DefaultTTL    time.Duration `yaml:"default_ttl"`
}

// LRUConfig configures the product lookup cache.
type LRUConfig struct {
	Capacity int `yaml:"capacity"`
}

// FetchConfig configures the URL fetcher.
type FetchConfig struct {
	Timeout time.Duration `yaml:"timeout"`
	Retries int           `yaml:"retries"`
	Backoff time.Duration `yaml:"backoff"`
}

// Default returns a configuration that works out of the box.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Addr: ":8080", ShutdownTimeout: 10 * time.Second},
		Log:       LogConfig{Level: "info", Format: "console"},
		RateLimit: RateLimitConfig{MaxRequests: 100, Window: time.Minute, Backend: "memory"},
		KV:        KVConfig{SweepInterval: 30 * time.Second, DefaultTTL: time.Hour},
		LRU:       LRUConfig{Capacity: 128},
		Fetch:     FetchConfig{Timeout: 5 * time.Second, Retries: 3, Backoff: 300 * time.Millisecond},
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then envFiles loaded through godotenv (missing files
// are ignored), then DRILLS_* variables and REDIS_URL. The result is
// validated.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from the environment.
func (c *Config) applyEnv() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		if v, ok := os.LookupEnv(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrBadConfig, key, v, err)
			}
			*dst = n
		}
		return nil
	}
	dur := func(key string, dst *time.Duration) error {
		if v, ok := os.LookupEnv(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrBadConfig, key, v, err)
			}
			*dst = d
		}
		return nil
	}

	str("DRILLS_ADDR", &c.Server.Addr)
	str("DRILLS_LOG_LEVEL", &c.Log.Level)
	str("DRILLS_LOG_FORMAT", &c.Log.Format)
	str("DRILLS_RATE_BACKEND", &c.RateLimit.Backend)
	str("REDIS_URL", &c.RateLimit.RedisURL)

	return errors.Join(
		num("DRILLS_RATE_MAX", &c.RateLimit.MaxRequests),
		dur("DRILLS_RATE_WINDOW", &c.RateLimit.Window),
		dur("DRILLS_KV_SWEEP", &c.KV.SweepInterval),
		dur("DRILLS_KV_TTL", &c.KV.DefaultTTL),
		num("DRILLS_LRU_CAPACITY", &c.LRU.Capacity),
		dur("DRILLS_FETCH_TIMEOUT", &c.Fetch.Timeout),
		num("DRILLS_FETCH_RETRIES", &c.Fetch.Retries),
		dur("DRILLS_FETCH_BACKOFF", &c.Fetch.Backoff),
	)
}

// Validate reports every problem found, each wrapped in ErrBadConfig.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrBadConfig}, args...)...))
	}

	if c.Server.Addr == "" {
		bad("server.addr is empty")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		bad("log.format %q", c.Log.Format)
	}
	if c.RateLimit.MaxRequests < 1 {
		bad("rate_limit.max_requests %d", c.RateLimit.MaxRequests)
	}
	if c.RateLimit.Window <= 0 {
		bad("rate_limit.window %s", c.RateLimit.Window)
	}
	switch c.RateLimit.Backend {
	case "memory":
	case "redis":
		if c.RateLimit.RedisURL == "" {
			bad("rate_limit.redis_url required for redis backend")
		}
	default:
		bad("rate_limit.backend %q", c.RateLimit.Backend)
	}
	if c.KV.SweepInterval <= 0 {
		bad("kv.sweep_interval %s", c.KV.SweepInterval)
	}
	if c.KV.DefaultTTL <= 0 {
		bad("kv.default_ttl %s", c.KV.DefaultTTL)
	}
	if c.LRU.Capacity < 1 {
		bad("lru.capacity %d", c.LRU.Capacity)
	}
	if c.Fetch.Timeout <= 0 || c.Fetch.Retries < 0 || c.Fetch.Backoff < 0 {
		bad("fetch timeout=%s retries=%d backoff=%s", c.Fetch.Timeout, c.Fetch.Retries, c.Fetch.Backoff)
	}

	return errors.Join(errs...)
}
