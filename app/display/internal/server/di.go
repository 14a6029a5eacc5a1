package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/engine"
	"github.com/iWorld-y/ai_pulse/app/display/internal/biz"
	"github.com/iWorld-y/ai_pulse/app/display/internal/service"
)

// ProviderSet 是展示服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Engine providers
	NewPulseEngine,
	wire.Bind(new(biz.Fetcher), new(*engine.Engine)),

	// UseCase providers
	biz.NewReportUseCase,

	// Service providers
	service.NewDisplayService,
)
