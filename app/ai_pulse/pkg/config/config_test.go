package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
provider: OpenAI
llm:
  base_url: https://api.example.com/v1
  model: mimo-v2-flash
search:
  provider: searxng
  searxng:
    base_url: http://localhost:8080
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "mimo-v2-flash", cfg.LLM.Model)
	assert.Equal(t, "searxng", cfg.Search.Provider)
	assert.Equal(t, 8, cfg.Search.MaxResults)
	assert.Equal(t, DefaultGeminiModel, cfg.Gemini.Model)
	assert.Equal(t, []string{"API_KEY", "API"}, cfg.Credential.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [gemini"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestEnvCredential(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("API", "")

	read := EnvCredential()
	assert.Equal(t, "", read())

	// 调用时读取，而不是构造时
	t.Setenv("API", "fallback-key")
	assert.Equal(t, "fallback-key", read())

	t.Setenv("API_KEY", "primary-key")
	assert.Equal(t, "primary-key", read())
}

func TestConfigCredential(t *testing.T) {
	t.Setenv("PULSE_KEY", "k-123")

	cfg := &Config{Credential: CredentialConfig{Env: []string{"PULSE_KEY"}}}
	assert.Equal(t, "k-123", cfg.CredentialReader()())
}
