// Package config loads chipvax runtime settings from the environment.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see Default).
//  2. A .env file in the working directory, if present.
//  3. Process environment variables.
//
// Variables
//
//	CHIPVAX_API_URL     registry base URL (default https://www.crsz.sk)
//	CHIPVAX_TIMEOUT     per-request HTTP timeout (default 30s)
//	CHIPVAX_LOG_LEVEL   debug|info|warn|error (default info)
//	CHIPVAX_LOG_FORMAT  text|json (default text)
//	CHIPVAX_UI          plain|tui (default plain)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIURL    = "CHIPVAX_API_URL"
	EnvTimeout   = "CHIPVAX_TIMEOUT"
	EnvLogLevel  = "CHIPVAX_LOG_LEVEL"
	EnvLogFormat = "CHIPVAX_LOG_FORMAT"
	EnvUI        = "CHIPVAX_UI"
)

// UI modes.
const (
	UIPlain = "plain"
	UITUI   = "tui"
)

// Config holds runtime settings.
type Config struct {
	APIURL    string
	Timeout   time.Duration
	LogLevel  string
	LogFormat string
	UI        string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIURL:    "https://www.crsz.sk",
		Timeout:   30 * time.Second,
		LogLevel:  "info",
		LogFormat: "text",
		UI:        UIPlain,
	}
}

// LoadDotEnv reads KEY=VALUE pairs from path without touching the process
// environment. A missing file yields an empty map.
func LoadDotEnv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("config.LoadDotEnv: %w", err)
	}
	return env, nil
}

// Load builds a Config from defaults, the dotenv values and getenv.
// getenv takes precedence over dotenv.
func Load(getenv func(string) string, dotenv map[string]string) (*Config, error) {
	lookup := func(key string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(dotenv[key])
	}

	cfg := Default()
	if v := lookup(EnvAPIURL); v != "" {
		cfg.APIURL = strings.TrimRight(v, "/")
	}
	if v := lookup(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config.Load: invalid %s=%q: %w", EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}
	if v := lookup(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := lookup(EnvLogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := lookup(EnvUI); v != "" {
		cfg.UI = strings.ToLower(v)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.APIURL == "" {
		errs = append(errs, EnvAPIURL+" is required")
	} else if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("%s (%q) must be an absolute URL", EnvAPIURL, c.APIURL))
	}
	if c.Timeout <= 0 {
		errs = append(errs, EnvTimeout+" must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("%s (%q) must be debug, info, warn or error", EnvLogLevel, c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("%s (%q) must be text or json", EnvLogFormat, c.LogFormat))
	}
	switch c.UI {
	case UIPlain, UITUI:
	default:
		errs = append(errs, fmt.Sprintf("%s (%q) must be plain or tui", EnvUI, c.UI))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
