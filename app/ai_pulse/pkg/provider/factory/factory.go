package factory

import (
	"fmt"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/config"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/gemini"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/openai"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/provider"
	searchfactory "github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/search/factory"
)

// NewProvider 根据配置创建 provider
func NewProvider(cfg *config.Config) (provider.Provider, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		model := cfg.Gemini.Model
		if model == "" {
			model = config.DefaultGeminiModel
		}
		return gemini.NewClient(model, gemini.WithThinkingBudget(cfg.Gemini.ThinkingBudget)), nil

	case config.ProviderOpenAI:
		if cfg.LLM.Model == "" {
			return nil, fmt.Errorf("llm model is missing")
		}
		searcher, err := searchfactory.NewSearcher(cfg.Search)
		if err != nil {
			return nil, fmt.Errorf("搜索客户端初始化失败: %w", err)
		}
		opts := []openai.Option{openai.WithEnrichment(cfg.Search.EnrichContent)}
		if searcher != nil {
			opts = append(opts, openai.WithSearcher(searcher, cfg.Search.MaxResults))
		}
		return openai.NewClient(cfg.LLM.BaseURL, cfg.LLM.Model, opts...), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
