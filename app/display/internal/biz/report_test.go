package biz

import (
	"context"
	"testing"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/model"
)

type refreshKey struct{}

// mockFetcher 按 ctx 中的刷新名称返回预设状态，gate 关闭前阻塞
type mockFetcher struct {
	results map[string]model.AppState
	gates   map[string]chan struct{}
}

func (m *mockFetcher) Load(ctx context.Context) model.AppState {
	name, _ := ctx.Value(refreshKey{}).(string)
	if gate, ok := m.gates[name]; ok {
		<-gate
	}
	return m.results[name]
}

func named(name string) context.Context {
	return context.WithValue(context.Background(), refreshKey{}, name)
}

func TestReportUseCase_Refresh(t *testing.T) {
	report := &model.Report{Headline: "H"}
	fetcher := &mockFetcher{results: map[string]model.AppState{"a": model.Loaded(report)}}
	uc := NewReportUseCase(fetcher, log.DefaultLogger)

	if got := uc.State().Status(); got != model.StatusLoading {
		t.Errorf("initial status = %v, want loading", got)
	}

	uc.Refresh(named("a"))
	uc.Wait()

	r, ok := uc.State().Report()
	if !ok || r.Headline != "H" {
		t.Errorf("State() report = %v, %v", r, ok)
	}
}

func TestReportUseCase_LastRefreshWins(t *testing.T) {
	first := make(chan struct{})
	fetcher := &mockFetcher{
		results: map[string]model.AppState{
			"first":  model.Loaded(&model.Report{Headline: "stale"}),
			"second": model.Failed(model.ErrorDetail{Code: "PROVIDER_ERROR", Message: "quota"}),
		},
		gates: map[string]chan struct{}{"first": first},
	}
	uc := NewReportUseCase(fetcher, log.DefaultLogger)

	// 第一次刷新阻塞，第二次刷新先完成
	g1 := uc.Refresh(named("first"))
	g2 := uc.Refresh(named("second"))
	if g2 <= g1 {
		t.Fatalf("generation not increasing: %d then %d", g1, g2)
	}
	close(first)
	uc.Wait()

	d, ok := uc.State().Failure()
	if !ok || d.Message != "quota" {
		t.Errorf("State() = %v, want failed quota", uc.State().Status())
	}
}

func TestReportUseCase_RefreshResetsToLoading(t *testing.T) {
	gate := make(chan struct{})
	fetcher := &mockFetcher{
		results: map[string]model.AppState{
			"a": model.Loaded(&model.Report{Headline: "A"}),
			"b": model.Loaded(&model.Report{Headline: "B"}),
		},
		gates: map[string]chan struct{}{"b": gate},
	}
	uc := NewReportUseCase(fetcher, log.DefaultLogger)
	uc.Refresh(named("a"))
	uc.Wait()

	uc.Refresh(named("b"))
	if got := uc.State().Status(); got != model.StatusLoading {
		t.Errorf("status during refresh = %v, want loading", got)
	}
	close(gate)
	uc.Wait()

	r, _ := uc.State().Report()
	if r == nil || r.Headline != "B" {
		t.Errorf("State() report = %v, want B", r)
	}
}
