package factory

import (
	"fmt"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/config"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/search"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/searxng"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/tavily"
)

// NewSearcher 根据配置创建搜索实例；未配置搜索时返回 nil
func NewSearcher(cfg config.SearchConfig) (search.Searcher, error) {
	provider := cfg.Provider
	if provider == "" {
		switch {
		case cfg.Tavily.APIKey != "":
			provider = "tavily"
		case cfg.SearXNG.BaseURL != "":
			provider = "searxng"
		default:
			return nil, nil
		}
	}

	switch provider {
	case "tavily":
		if cfg.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(cfg.Tavily.APIKey), nil

	case "searxng":
		if cfg.SearXNG.BaseURL == "" {
			return nil, fmt.Errorf("searxng base url is missing")
		}
		return searxng.NewClient(cfg.SearXNG.BaseURL, cfg.SearXNG.Timeout), nil

	case "none":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", provider)
	}
}
