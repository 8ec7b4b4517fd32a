package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names that override config file values.
const (
	EnvConfigPath   = "CONFIG_PATH"
	EnvDBConnection = "DB_CONNECTION"
	EnvJWTSecret    = "JWT_SECRET"
	EnvJWTExpiry    = "JWT_EXPIRY"
	EnvPort         = "PORT"
	EnvRedisAddr    = "REDIS_ADDR"
)

// ErrMissingDatabaseDSN indicates no database DSN is present in the config file.
var ErrMissingDatabaseDSN = errors.New("missing database dsn (set `database-dsn` or `database.dsn` in config file)")

// defaultJWTExpiry keeps issued tokens valid for a week.
const defaultJWTExpiry = 7 * 24 * time.Hour

// Defaults applied when the config file omits a value.
const (
	DefaultPort = 5000

	// DefaultAuthRateLimit bounds register/login attempts per IP per window.
	DefaultAuthRateLimit = 5
	// DefaultAPIRateLimit bounds all other API requests per IP per window.
	DefaultAPIRateLimit = 100
	// DefaultRateWindow is the fixed rate-limit window size.
	DefaultRateWindow = 15 * time.Minute
)

// JWTConfig holds JWT secret and expiry settings.
type JWTConfig struct {
	Secret string        `yaml:"secret"`
	Expiry time.Duration `yaml:"expiry"`
}

// RedisConfig holds the optional Redis connection settings. When Addr is
// empty, redis-backed components fall back to their in-process equivalents.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// RateLimitConfig holds per-IP request budgets.
type RateLimitConfig struct {
	AuthMax int           `yaml:"auth-max"`
	APIMax  int           `yaml:"api-max"`
	Window  time.Duration `yaml:"window"`
}

// AppConfig holds resolved application configuration values.
type AppConfig struct {
	ConfigPath string
	Port       int
	DSN        string
	JWT        JWTConfig
	Redis      RedisConfig
	RateLimit  RateLimitConfig
}

// fileConfig maps the YAML layout of the config file.
type fileConfig struct {
	DatabaseDSN string `yaml:"database-dsn"`
	Database    struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`
	Port      int             `yaml:"port"`
	JWT       JWTConfig       `yaml:"jwt"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate-limit"`
}

// ResolveConfigPath normalizes the config path and applies defaults.
func ResolveConfigPath(p string) string {
	trimmed := strings.TrimSpace(p)
	if trimmed == "" {
		trimmed = "./config.yaml"
	}
	if abs, err := filepath.Abs(trimmed); err == nil {
		return abs
	}
	return trimmed
}

// Load reads the config file and applies environment overrides. A missing
// file at the default path is fine as long as the environment supplies a
// database DSN; a path given explicitly (flag or CONFIG_PATH) must be
// readable.
func Load(path string) (AppConfig, error) {
	explicit := strings.TrimSpace(path) != ""
	configPath := ResolveConfigPath(path)
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" && !explicit {
		configPath = ResolveConfigPath(env)
		explicit = true
	}

	var file fileConfig
	data, errRead := os.ReadFile(configPath)
	switch {
	case errRead == nil:
		if errUnmarshal := yaml.Unmarshal(data, &file); errUnmarshal != nil {
			return AppConfig{}, fmt.Errorf("parse config file: %w", errUnmarshal)
		}
	case explicit:
		return AppConfig{}, fmt.Errorf("read config file: %w", errRead)
	}

	cfg := AppConfig{
		ConfigPath: configPath,
		Port:       file.Port,
		DSN:        strings.TrimSpace(file.DatabaseDSN),
		JWT:        file.JWT,
		Redis:      file.Redis,
		RateLimit:  file.RateLimit,
	}
	if cfg.DSN == "" {
		cfg.DSN = strings.TrimSpace(file.Database.DSN)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if cfg.DSN == "" {
		return AppConfig{}, ErrMissingDatabaseDSN
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment win over file values.
func applyEnvOverrides(cfg *AppConfig) {
	if dsn := strings.TrimSpace(os.Getenv(EnvDBConnection)); dsn != "" {
		cfg.DSN = dsn
	}
	if secret := strings.TrimSpace(os.Getenv(EnvJWTSecret)); secret != "" {
		cfg.JWT.Secret = secret
	}
	if expiryRaw := strings.TrimSpace(os.Getenv(EnvJWTExpiry)); expiryRaw != "" {
		if expiry, errParse := time.ParseDuration(expiryRaw); errParse == nil && expiry > 0 {
			cfg.JWT.Expiry = expiry
		}
	}
	if portRaw := strings.TrimSpace(os.Getenv(EnvPort)); portRaw != "" {
		if port, errParse := strconv.Atoi(portRaw); errParse == nil && port > 0 && port <= 65535 {
			cfg.Port = port
		}
	}
	if addr := strings.TrimSpace(os.Getenv(EnvRedisAddr)); addr != "" {
		cfg.Redis.Addr = addr
	}
}

// applyDefaults fills unset values.
func applyDefaults(cfg *AppConfig) {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		cfg.Port = DefaultPort
	}
	if cfg.JWT.Expiry <= 0 {
		cfg.JWT.Expiry = defaultJWTExpiry
	}
	if cfg.RateLimit.AuthMax <= 0 {
		cfg.RateLimit.AuthMax = DefaultAuthRateLimit
	}
	if cfg.RateLimit.APIMax <= 0 {
		cfg.RateLimit.APIMax = DefaultAPIRateLimit
	}
	if cfg.RateLimit.Window <= 0 {
		cfg.RateLimit.Window = DefaultRateWindow
	}
	cfg.Redis.Addr = strings.TrimSpace(cfg.Redis.Addr)
}
