package server

import (
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/config"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/engine"
	pulseLogger "github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/logger"
	"github.com/iWorld-y/ai_pulse/app/display/internal/conf"
)

// PulseConfig 将 internal/conf.Pulse 转换为 pkg/config.Config，未配置的字段使用默认值
func PulseConfig(c *conf.Pulse) *config.Config {
	cfg := &config.Config{}
	if c == nil {
		cfg.ApplyDefaults()
		return cfg
	}

	cfg.Provider = c.Provider
	cfg.Credential.Env = c.CredentialEnv
	if c.Gemini != nil {
		cfg.Gemini = config.GeminiConfig{
			Model:          c.Gemini.Model,
			ThinkingBudget: c.Gemini.ThinkingBudget,
		}
	}
	if c.Llm != nil {
		cfg.LLM = config.LLMConfig{
			BaseURL: c.Llm.BaseUrl,
			Model:   c.Llm.Model,
		}
	}
	if c.Search != nil {
		cfg.Search.Provider = c.Search.Provider
		cfg.Search.MaxResults = int(c.Search.MaxResults)
		cfg.Search.EnrichContent = c.Search.EnrichContent
		if c.Search.Tavily != nil {
			cfg.Search.Tavily.APIKey = c.Search.Tavily.ApiKey
		}
		if c.Search.Searxng != nil {
			cfg.Search.SearXNG = config.SearXNGConfig{
				BaseURL: c.Search.Searxng.BaseUrl,
				Timeout: int(c.Search.Searxng.Timeout),
			}
		}
	}
	if c.Log != nil {
		cfg.Log = config.LogConfig{
			Level: c.Log.Level,
			File:  c.Log.File,
		}
	}

	cfg.ApplyDefaults()
	return cfg
}

// NewPulseEngine 初始化报告引擎
func NewPulseEngine(c *conf.Pulse, logger log.Logger) (*engine.Engine, error) {
	helper := log.NewHelper(logger)
	cfg := PulseConfig(c)

	// 初始化引擎日志
	if err := pulseLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		helper.Errorf("Failed to init ai_pulse logger: %v", err)
		_ = pulseLogger.InitLogger("info", "") // 降级处理
	}

	eng, err := engine.NewEngine(cfg)
	if err != nil {
		helper.Errorf("Failed to init engine: %v", err)
		return nil, err
	}
	helper.Infof("ai_pulse engine ready, provider=%s", cfg.Provider)
	return eng, nil
}
