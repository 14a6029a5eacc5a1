package service

import (
	"context"
	"io"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/model"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/render"
	"github.com/iWorld-y/ai_pulse/app/display/internal/biz"
)

// RefreshPath 页面刷新表单提交地址
const RefreshPath = "/refresh"

type DisplayService struct {
	ucReport *biz.ReportUseCase
	log      *log.Helper
}

func NewDisplayService(ucReport *biz.ReportUseCase, logger log.Logger) *DisplayService {
	return &DisplayService{
		ucReport: ucReport,
		log:      log.NewHelper(logger),
	}
}

// State 当前页面状态
func (s *DisplayService) State(ctx context.Context) model.AppState {
	return s.ucReport.State()
}

// Refresh 触发一次重新拉取，立即返回 loading 状态
func (s *DisplayService) Refresh(ctx context.Context) model.AppState {
	s.ucReport.Refresh(ctx)
	return s.ucReport.State()
}

// RenderPage 按当前状态渲染页面
func (s *DisplayService) RenderPage(ctx context.Context, w io.Writer) error {
	if err := render.Page(w, s.ucReport.State(), render.Options{RefreshPath: RefreshPath}); err != nil {
		s.log.WithContext(ctx).Errorf("render page: %v", err)
		return err
	}
	return nil
}
