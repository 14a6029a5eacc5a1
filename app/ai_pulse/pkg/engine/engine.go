package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/config"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/logger"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/model"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/provider"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/provider/factory"
)

// RawResponse provider 的原始回复
type RawResponse struct {
	Date      string // 构造 prompt 使用的日期
	Prompt    string
	Text      string
	Citations []model.Source
}

// Engine 拉取并整理当日报告
type Engine struct {
	provider   provider.Provider
	credential config.CredentialSource
	normalizer *Normalizer
	now        func() time.Time
}

// Option Engine 选项
type Option func(*Engine)

// WithClock 替换时钟，同时作用于 prompt 日期与 lastUpdated
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New 创建引擎实例
func New(p provider.Provider, credential config.CredentialSource, opts ...Option) *Engine {
	e := &Engine{
		provider:   p,
		credential: credential,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.credential == nil {
		e.credential = config.EnvCredential()
	}
	e.normalizer = NewNormalizer(e.now)
	return e
}

// NewEngine 根据配置创建引擎实例
func NewEngine(cfg *config.Config) (*Engine, error) {
	p, err := factory.NewProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("provider 初始化失败: %w", err)
	}
	return New(p, cfg.CredentialReader()), nil
}

// FetchTrends 发送一次带联网搜索的请求，返回原始文本与引用。
// 凭证缺失时不发起任何网络请求。请求一旦发出不会被取消。
func (e *Engine) FetchTrends(ctx context.Context) (*RawResponse, error) {
	key := e.credential()
	if isPlaceholderCredential(key) {
		logger.Log.Warn("未检测到可用的 API Key，跳过请求")
		return nil, ErrMissingCredential
	}

	today := FormatDate(e.now())
	prompt := BuildPrompt(today)

	logger.Log.Infof("开始拉取 %s 的 AI 动态", today)
	resp, err := e.provider.Send(context.WithoutCancel(ctx), &provider.Request{
		APIKey:    key,
		Prompt:    prompt,
		WebSearch: true,
	})
	if err != nil {
		logger.Log.Errorf("provider 调用失败: %v", err)
		if credentialRejected(err.Error()) {
			return nil, ErrMissingCredential.WithCause(err)
		}
		return nil, ProviderError(err)
	}

	logger.Log.Infof("收到回复: %d 字符, %d 条引用", len(resp.Text), len(resp.Citations))
	return &RawResponse{
		Date:      today,
		Prompt:    prompt,
		Text:      resp.Text,
		Citations: resp.Citations,
	}, nil
}

// FetchReport 拉取并解析当日报告，任何失败都不返回 Report
func (e *Engine) FetchReport(ctx context.Context) (*model.Report, error) {
	raw, err := e.FetchTrends(ctx)
	if err != nil {
		return nil, err
	}

	report, err := e.normalizer.Normalize(raw.Text, raw.Citations)
	if err != nil {
		logger.Log.Errorf("报告解析失败: %v", err)
		return nil, err
	}
	if report.Date == "" {
		report.Date = raw.Date
	}

	logger.Log.Infof("报告生成完成: %s (事件 %d, 工具 %d, 来源 %d)",
		report.Headline, len(report.Events), len(report.Tools), len(report.Sources))
	return report, nil
}

// Load 拉取报告并得到对应的页面状态
func (e *Engine) Load(ctx context.Context) model.AppState {
	report, err := e.FetchReport(ctx)
	return model.Resolve(report, Detail(err))
}
