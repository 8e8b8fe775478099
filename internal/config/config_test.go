package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LEXTERM_API_BASE_URL", "LEXTERM_API_TIMEOUT_SECONDS", "LEXTERM_THEME"} {
		old, had := os.LookupEnv(k)
		os.Unsetenv(k)
		if had {
			t.Cleanup(func() { os.Setenv(k, old) })
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing-means-defaults-but-explicit-path-errors"))
	assert.Error(t, err, "explicit path must exist")

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 60, cfg.API.TimeoutSeconds)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestLoad_FileAndEnvPrecedence(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "lexterm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api:\n  base_url: https://legal.example.com\n  timeout_seconds: 30\nui:\n  theme: light\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://legal.example.com", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	assert.Equal(t, "light", cfg.UI.Theme)

	// Env overrides the file.
	os.Setenv("LEXTERM_API_BASE_URL", "https://staging.example.com")
	defer os.Unsetenv("LEXTERM_API_BASE_URL")

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", cfg.API.BaseURL)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "lexterm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErrs []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:     "missing base url",
			mutate:   func(c *Config) { c.API.BaseURL = "" },
			wantErrs: []string{"api.base_url"},
		},
		{
			name:     "relative base url",
			mutate:   func(c *Config) { c.API.BaseURL = "localhost:8080" },
			wantErrs: []string{"api.base_url"},
		},
		{
			name:     "timeout out of range",
			mutate:   func(c *Config) { c.API.TimeoutSeconds = 0 },
			wantErrs: []string{"api.timeout_seconds"},
		},
		{
			name:     "unknown theme",
			mutate:   func(c *Config) { c.UI.Theme = "solarized" },
			wantErrs: []string{"ui.theme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tt.mutate(cfg)

			errs := cfg.Validate()
			require.Len(t, errs, len(tt.wantErrs))
			for i, field := range tt.wantErrs {
				assert.Equal(t, field, errs[i].Field)
			}
		})
	}
}
