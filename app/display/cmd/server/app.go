package main

import (
	"context"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/ai_pulse/app/display/internal/biz"
)

func newApp(logger log.Logger, hs *http.Server, uc *biz.ReportUseCase) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(hs),
		// 启动即拉取一次，页面先展示 loading
		kratos.BeforeStart(func(ctx context.Context) error {
			uc.Refresh(ctx)
			return nil
		}),
	)
}
