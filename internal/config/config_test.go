package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_PATH", "PORT", "ENV", "READ_TIMEOUT", "WRITE_TIMEOUT",
		"LLM_PROVIDER", "LLM_MODEL", "LLM_BASE_URL",
		"GROQ_API_KEY", "GEMINI_API_KEY", "MAX_FILE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "groq", cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("WRITE_TIMEOUT", "45s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gsk-test", cfg.LLM.APIKey)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
	assert.Equal(t, 45*time.Second, cfg.Server.WriteTimeout)
}

func TestLoad_ProviderSelectsKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("GEMINI_API_KEY", "gemini-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-test", cfg.LLM.APIKey)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configData := `
server:
  port: "9000"
  read_timeout: 10s
llm:
  provider: groq
  model: llama-3.3-70b-versatile
  api_key: from-file
storage:
  max_file_size: 4096
`
	require.NoError(t, os.WriteFile(configPath, []byte(configData), 0644))

	t.Setenv("CONFIG_PATH", configPath)
	t.Setenv("GROQ_API_KEY", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.Model)
	assert.Equal(t, "from-env", cfg.LLM.APIKey)
	assert.Equal(t, int64(4096), cfg.Storage.MaxFileSize)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: [unclosed"), 0644))
	t.Setenv("CONFIG_PATH", configPath)

	_, err := Load()
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(c *Config)
		expectedErrs int
	}{
		{
			name:         "valid config",
			mutate:       func(c *Config) { c.LLM.APIKey = "key" },
			expectedErrs: 0,
		},
		{
			name:         "missing api key",
			mutate:       func(c *Config) {},
			expectedErrs: 1,
		},
		{
			name: "invalid everything",
			mutate: func(c *Config) {
				c.Server.Port = "http"
				c.LLM.Provider = "openai"
				c.LLM.BaseURL = "not a url"
				c.Storage.MaxFileSize = 0
			},
			expectedErrs: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			errs := cfg.Validate()
			assert.Len(t, errs, tt.expectedErrs)
		})
	}
}
