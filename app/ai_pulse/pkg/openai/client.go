package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/go-shiori/go-readability"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/logger"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/provider"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/search"
)

const (
	searchQuery   = "AI 人工智能 最新发布 新工具 商业落地"
	maxSnippetLen = 1200
	minSnippetLen = 200
	fetchTimeout  = 30 * time.Second
	systemPrompt  = "你是一个 JSON 生成器。请只输出 JSON 字符串。"
)

// ModelBuilder 按 API Key 创建 chat model
type ModelBuilder func(ctx context.Context, apiKey string) (model.BaseChatModel, error)

// Client OpenAI 兼容接口的 provider。模型本身不能联网，
// 开启联网搜索时先调用 Searcher，把结果写进 prompt 并作为引用返回。
type Client struct {
	build      ModelBuilder
	searcher   search.Searcher
	maxResults int
	enrich     bool
	fetch      func(url string) (string, error)
}

// Option 客户端选项
type Option func(*Client)

// WithSearcher 设置联网搜索后端
func WithSearcher(s search.Searcher, maxResults int) Option {
	return func(c *Client) {
		c.searcher = s
		c.maxResults = maxResults
	}
}

// WithEnrichment 摘要过短时抓取原文正文
func WithEnrichment(enabled bool) Option {
	return func(c *Client) { c.enrich = enabled }
}

// WithModelBuilder 替换 chat model 的创建方式
func WithModelBuilder(b ModelBuilder) Option {
	return func(c *Client) { c.build = b }
}

// NewClient 创建 OpenAI 兼容 provider
func NewClient(baseURL, modelName string, opts ...Option) *Client {
	c := &Client{
		build: func(ctx context.Context, apiKey string) (model.BaseChatModel, error) {
			return einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
				BaseURL: baseURL,
				APIKey:  apiKey,
				Model:   modelName,
			})
		},
		maxResults: 8,
		fetch:      fetchAndCleanContent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ provider.Provider = (*Client)(nil)

// Send implements provider.Provider
func (c *Client) Send(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	cm, err := c.build(ctx, req.APIKey)
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}

	prompt := req.Prompt
	var results []search.Result
	if req.WebSearch && c.searcher != nil {
		results = c.searchResults(ctx)
		prompt = augmentPrompt(prompt, results)
	}

	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(prompt),
	}
	resp, err := cm.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("openai generate failed: %w", err)
	}

	sr := &search.Response{Results: results}
	return &provider.Response{
		Text:      resp.Content,
		Citations: sr.Sources(),
	}, nil
}

// searchResults 搜索失败不影响生成，只是没有实时资料
func (c *Client) searchResults(ctx context.Context) []search.Result {
	resp, err := c.searcher.Search(ctx, &search.Request{
		Query:      searchQuery,
		News:       true,
		MaxResults: c.maxResults,
		Days:       1,
	})
	if err != nil {
		logger.Log.Warnf("联网搜索失败，继续生成: %v", err)
		return nil
	}

	results := resp.Results
	for i := range results {
		if c.enrich && len(results[i].Content) < minSnippetLen {
			if fetched, err := c.fetch(results[i].URL); err == nil && len(fetched) > len(results[i].Content) {
				results[i].Content = fetched
			} else if err != nil {
				logger.Log.Debugf("原文抓取失败 [%s]: %v", results[i].URL, err)
			}
		}
		results[i].Content = truncate(results[i].Content, maxSnippetLen)
	}
	return results
}

// augmentPrompt 把搜索结果作为参考资料附加到 prompt 末尾
func augmentPrompt(prompt string, results []search.Result) string {
	if len(results) == 0 {
		return prompt
	}

	var sb strings.Builder
	sb.WriteString(prompt)
	sb.WriteString("\n以下是今天联网搜索得到的参考资料，请优先基于这些资料作答：\n\n")
	for i, r := range results {
		fmt.Fprintf(&sb, "资料 %d:\n标题: %s\n链接: %s\n", i+1, r.Title, r.URL)
		if r.PublishedDate != "" {
			fmt.Fprintf(&sb, "发布时间: %s\n", r.PublishedDate)
		}
		fmt.Fprintf(&sb, "内容摘要: %s\n\n", r.Content)
	}
	return sb.String()
}

func fetchAndCleanContent(url string) (string, error) {
	article, err := readability.FromURL(url, fetchTimeout)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}

// truncate 按 rune 截断，避免切坏多字节字符
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
