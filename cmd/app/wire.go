//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/city-insights/internal/bootstrap"
	"github.com/yanqian/city-insights/internal/domain/dashboard"
	"github.com/yanqian/city-insights/internal/infra/config"
	"github.com/yanqian/city-insights/internal/infra/insightsapi"
	httpiface "github.com/yanqian/city-insights/internal/interface/http"
	"github.com/yanqian/city-insights/pkg/logger"
	"github.com/yanqian/city-insights/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		providePageLocation,
		provideBackendClient,
		provideMessages,
		provideDashboardConfig,
		provideBoard,
		providePageOptions,
		metrics.NewCounters,
		dashboard.NewController,
		wire.Bind(new(dashboard.BackendClient), new(*insightsapi.Client)),
		wire.Bind(new(dashboard.View), new(*dashboard.Board)),
		wire.Bind(new(httpiface.DashboardController), new(*dashboard.Controller)),
		wire.Bind(new(httpiface.BoardReader), new(*dashboard.Board)),
		wire.Bind(new(httpiface.HealthChecker), new(*insightsapi.Client)),
		wire.Bind(new(bootstrap.Loader), new(*dashboard.Controller)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
