package biz

import (
	"context"
	"sync"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/model"
)

// Fetcher 拉取报告并给出页面状态，由 engine.Engine 实现
type Fetcher interface {
	Load(ctx context.Context) model.AppState
}

// ReportUseCase 持有当前页面状态。每次刷新整体替换状态值，
// 被后续刷新取代的结果直接丢弃
type ReportUseCase struct {
	fetcher Fetcher
	log     *log.Helper

	mu    sync.RWMutex
	state model.AppState
	gen   uint64

	wg sync.WaitGroup
}

// NewReportUseCase 创建报告业务逻辑实例，初始状态为 loading
func NewReportUseCase(fetcher Fetcher, logger log.Logger) *ReportUseCase {
	return &ReportUseCase{
		fetcher: fetcher,
		log:     log.NewHelper(logger),
		state:   model.Loading(),
	}
}

// State 当前页面状态
func (uc *ReportUseCase) State() model.AppState {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state
}

// Refresh 将状态置为 loading 并在后台重新拉取，返回本次刷新的序号
func (uc *ReportUseCase) Refresh(ctx context.Context) uint64 {
	uc.mu.Lock()
	uc.gen++
	gen := uc.gen
	uc.state = model.Loading()
	uc.mu.Unlock()

	uc.log.Infof("refresh #%d started", gen)

	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		uc.apply(gen, uc.fetcher.Load(context.WithoutCancel(ctx)))
	}()
	return gen
}

// apply 仅当 gen 仍是最新一次刷新时写入状态
func (uc *ReportUseCase) apply(gen uint64, state model.AppState) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if gen != uc.gen {
		uc.log.Warnf("refresh #%d superseded by #%d, result dropped", gen, uc.gen)
		return false
	}
	uc.state = state
	if d, failed := state.Failure(); failed {
		uc.log.Errorf("refresh #%d failed: %s %s", gen, d.Code, d.Message)
	} else {
		uc.log.Infof("refresh #%d finished: %s", gen, state.Status())
	}
	return true
}

// Wait 等待所有进行中的刷新结束
func (uc *ReportUseCase) Wait() {
	uc.wg.Wait()
}
