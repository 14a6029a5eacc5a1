package server

import (
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/ai_pulse/app/display/internal/conf"
	"github.com/iWorld-y/ai_pulse/app/display/internal/service"
)

func NewHTTPServer(c *conf.Server, s *service.DisplayService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			}
		}
	}

	srv := http.NewServer(opts...)
	registerRoutes(srv, s)
	return srv
}

func registerRoutes(srv *http.Server, s *service.DisplayService) {
	r := srv.Route("/")

	r.GET("/api/state", func(ctx http.Context) error {
		return ctx.Result(nethttp.StatusOK, s.State(ctx))
	})

	r.POST("/api/refresh", func(ctx http.Context) error {
		return ctx.Result(nethttp.StatusAccepted, s.Refresh(ctx))
	})

	// 页面上的刷新表单，提交后回到首页
	r.POST(service.RefreshPath, func(ctx http.Context) error {
		s.Refresh(ctx)
		nethttp.Redirect(ctx.Response(), ctx.Request(), "/", nethttp.StatusSeeOther)
		return nil
	})

	r.GET("/", func(ctx http.Context) error {
		w := ctx.Response()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		return s.RenderPage(ctx, w)
	})
}
