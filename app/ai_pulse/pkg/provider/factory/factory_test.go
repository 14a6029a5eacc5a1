package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/config"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/gemini"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/openai"
)

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(config.Default())
	require.NoError(t, err)
	assert.IsType(t, &gemini.Client{}, p)

	cfg := config.Default()
	cfg.Provider = config.ProviderOpenAI
	cfg.LLM = config.LLMConfig{BaseURL: "https://api.example.com/v1", Model: "mimo-v2-flash"}
	cfg.Search.Tavily.APIKey = "tvly-x"
	p, err = NewProvider(cfg)
	require.NoError(t, err)
	assert.IsType(t, &openai.Client{}, p)

	cfg.LLM.Model = ""
	_, err = NewProvider(cfg)
	assert.EqualError(t, err, "llm model is missing")

	cfg.LLM.Model = "m"
	cfg.Search.Provider = "bing"
	_, err = NewProvider(cfg)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Provider = "claude"
	_, err = NewProvider(cfg)
	assert.EqualError(t, err, "unknown provider: claude")
}
