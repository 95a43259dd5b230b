package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yanqian/city-insights/internal/domain/dashboard"
	"github.com/yanqian/city-insights/internal/infra/config"
	"github.com/yanqian/city-insights/internal/infra/fallback"
	"github.com/yanqian/city-insights/internal/infra/insightsapi"
	"github.com/yanqian/city-insights/internal/interface/tui"
	"github.com/yanqian/city-insights/pkg/logger"
	"github.com/yanqian/city-insights/pkg/metrics"
)

// logPathEnv names a file that receives JSON logs; the terminal owns stdout.
const logPathEnv = "INSIGHTS_TUI_LOG"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("insights tui: load config: %v", err)
	}

	var logOut io.Writer = io.Discard
	if path := os.Getenv(logPathEnv); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			log.Fatalf("insights tui: open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	lg := logger.NewWithWriter(logOut)

	// A terminal has no page origin, so it resolves like a local file.
	base := insightsapi.ResolveBaseURL(cfg.Backend.BaseURL, insightsapi.PageLocation{Scheme: "file"})
	lg.Info("insights backend resolved", "base_url", base, "override", cfg.Backend.BaseURL != "")

	insights, err := fallback.Load(cfg.Dashboard.FallbackPath)
	if err != nil {
		log.Fatalf("insights tui: load fallback insights: %v", err)
	}

	msgs := dashboard.MessagesFor(cfg.Dashboard.Locale)
	board := dashboard.NewBoard(msgs.Empty, cfg.Dashboard.CardDelay)
	ctrl := dashboard.NewController(
		dashboard.Config{Fallback: insights, Messages: msgs},
		insightsapi.NewClient(base, cfg.Backend.Timeout),
		board,
		metrics.NewCounters(),
		lg,
	)

	model := tui.New(ctx, ctrl, board, cfg.Dashboard.Title, base, msgs.TriggerLabel)
	_, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if counters := ctrl.State().Counters; !counters.IsZero() {
		lg.Info("session finished", "counters", counters)
	}
	if runErr != nil {
		lg.Error("terminal program stopped", "error", runErr)
		log.Fatalf("insights tui: %v", runErr)
	}
}
