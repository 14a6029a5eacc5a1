package search

import (
	"context"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/model"
)

// Searcher 联网搜索能力，用于给不具备原生检索的模型补充实时资料
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Request 通用搜索请求
type Request struct {
	Query      string
	News       bool // true 时只搜新闻
	MaxResults int
	Days       int // 仅返回最近 N 天的结果，0 表示不限
}

// Response 通用搜索响应
type Response struct {
	Results []Result
}

// Result 单条搜索结果
type Result struct {
	Title         string
	URL           string
	Content       string
	PublishedDate string
}

// Sources 转换为报告引用
func (r *Response) Sources() []model.Source {
	if r == nil {
		return nil
	}
	sources := make([]model.Source, 0, len(r.Results))
	for _, res := range r.Results {
		sources = append(sources, model.Source{Title: res.Title, URI: res.URL})
	}
	return sources
}
