package main

import (
	"fmt"
	"log/slog"

	"github.com/yanqian/city-insights/internal/domain/dashboard"
	"github.com/yanqian/city-insights/internal/infra/config"
	"github.com/yanqian/city-insights/internal/infra/fallback"
	"github.com/yanqian/city-insights/internal/infra/insightsapi"
	httpiface "github.com/yanqian/city-insights/internal/interface/http"
)

func providePageLocation(cfg *config.Config) (insightsapi.PageLocation, error) {
	return insightsapi.ParsePageLocation(cfg.Dashboard.PublicURL)
}

func provideBackendClient(cfg *config.Config, page insightsapi.PageLocation, logger *slog.Logger) *insightsapi.Client {
	base := insightsapi.ResolveBaseURL(cfg.Backend.BaseURL, page)
	logger.Info("insights backend resolved", "base_url", base, "override", cfg.Backend.BaseURL != "", "page_origin", page.Origin())
	return insightsapi.NewClient(base, cfg.Backend.Timeout)
}

func provideMessages(cfg *config.Config, logger *slog.Logger) dashboard.Messages {
	if !dashboard.SupportedLocale(cfg.Dashboard.Locale) {
		logger.Warn("unsupported dashboard locale, using pt-BR", "locale", cfg.Dashboard.Locale)
	}
	return dashboard.MessagesFor(cfg.Dashboard.Locale)
}

func provideDashboardConfig(cfg *config.Config, msgs dashboard.Messages, logger *slog.Logger) (dashboard.Config, error) {
	insights, err := fallback.Load(cfg.Dashboard.FallbackPath)
	if err != nil {
		return dashboard.Config{}, fmt.Errorf("load fallback insights: %w", err)
	}
	if cfg.Dashboard.FallbackPath != "" {
		logger.Info("fallback insights loaded", "path", cfg.Dashboard.FallbackPath, "count", len(insights))
	}
	return dashboard.Config{Fallback: insights, Messages: msgs}, nil
}

func provideBoard(cfg *config.Config, msgs dashboard.Messages) *dashboard.Board {
	return dashboard.NewBoard(msgs.Empty, cfg.Dashboard.CardDelay)
}

func providePageOptions(cfg *config.Config, client *insightsapi.Client) httpiface.PageOptions {
	return httpiface.PageOptions{
		Title:   cfg.Dashboard.Title,
		Locale:  cfg.Dashboard.Locale,
		Backend: client.BaseURL(),
	}
}
