package gemini

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/model"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/provider"
)

// Client Google GenAI provider，开启联网搜索时使用 Google Search grounding
type Client struct {
	model          string
	thinkingBudget int32
	baseURL        string
	httpClient     *http.Client
}

// Option 客户端选项
type Option func(*Client)

// WithThinkingBudget 设置思考 token 预算，0 表示使用模型默认值
func WithThinkingBudget(budget int32) Option {
	return func(c *Client) { c.thinkingBudget = budget }
}

// WithBaseURL 覆盖 API 地址
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient 覆盖 HTTP 客户端
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient 创建 Gemini provider。SDK 客户端在每次请求时按传入的 API Key 创建
func NewClient(model string, opts ...Option) *Client {
	c := &Client{model: model}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ provider.Provider = (*Client)(nil)

// Send implements provider.Provider
func (c *Client) Send(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	cc := &genai.ClientConfig{
		APIKey:     req.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	}
	if c.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), c.generateConfig(req))
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	return &provider.Response{
		Text:      resp.Text(),
		Citations: Citations(resp),
	}, nil
}

func (c *Client) generateConfig(req *provider.Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.WebSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	if c.thinkingBudget > 0 {
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(c.thinkingBudget)}
	}
	return cfg
}

// Citations 读取首个候选的 grounding chunks。缺少 web 信息的 chunk 记为占位 URI "#"
func Citations(resp *genai.GenerateContentResponse) []model.Source {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	chunks := resp.Candidates[0].GroundingMetadata.GroundingChunks
	citations := make([]model.Source, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk == nil || chunk.Web == nil {
			citations = append(citations, model.Source{URI: "#"})
			continue
		}
		uri := chunk.Web.URI
		if uri == "" {
			uri = "#"
		}
		citations = append(citations, model.Source{Title: chunk.Web.Title, URI: uri})
	}
	return citations
}
