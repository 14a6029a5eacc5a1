package provider

import (
	"context"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/model"
)

// Provider 生成式模型的最小能力：发送 prompt，取回文本与引用
type Provider interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Request 一次生成请求
type Request struct {
	APIKey string
	Prompt string
	// WebSearch 允许 provider 使用联网搜索为回答提供依据
	WebSearch bool
}

// Response 原始回复文本与 provider 附带的引用，引用可能为空、重复或为占位 URI
type Response struct {
	Text      string
	Citations []model.Source
}

// Func 将普通函数适配为 Provider
type Func func(ctx context.Context, req *Request) (*Response, error)

// Send implements Provider
func (f Func) Send(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
