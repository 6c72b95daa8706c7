package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "https://www.crsz.sk", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, UIPlain, cfg.UI)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	cfg, err := Load(envFrom(map[string]string{
		EnvAPIURL:    "http://127.0.0.1:8080/",
		EnvTimeout:   "5s",
		EnvLogLevel:  "DEBUG",
		EnvLogFormat: "json",
		EnvUI:        "tui",
	}), nil)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, UITUI, cfg.UI)
}

func TestLoad_EnvBeatsDotEnv(t *testing.T) {
	cfg, err := Load(envFrom(map[string]string{
		EnvAPIURL: "https://staging.example.com",
	}), map[string]string{
		EnvAPIURL:  "https://dotenv.example.com",
		EnvTimeout: "10s",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad duration", map[string]string{EnvTimeout: "soon"}},
		{"zero timeout", map[string]string{EnvTimeout: "0s"}},
		{"relative url", map[string]string{EnvAPIURL: "www.crsz.sk"}},
		{"unknown ui", map[string]string{EnvUI: "fancy"}},
		{"unknown log level", map[string]string{EnvLogLevel: "trace"}},
		{"unknown log format", map[string]string{EnvLogFormat: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(envFrom(tt.env), nil)
			assert.Error(t, err)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{UI: "x", LogLevel: "info", LogFormat: "text"}
	err := cfg.Validate()
	require.Error(t, err)

	assert.Contains(t, err.Error(), EnvAPIURL)
	assert.Contains(t, err.Error(), EnvTimeout)
	assert.Contains(t, err.Error(), EnvUI)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CHIPVAX_API_URL=https://dotenv.example.com\nCHIPVAX_UI=tui\n"), 0o600))

	env, err := LoadDotEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "https://dotenv.example.com", env[EnvAPIURL])
	assert.Equal(t, "tui", env[EnvUI])
}

func TestLoadDotEnv_Missing(t *testing.T) {
	env, err := LoadDotEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Empty(t, env)
}
