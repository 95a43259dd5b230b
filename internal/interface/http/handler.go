package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/city-insights/internal/domain/dashboard"
)

// DashboardController is the command side of the dashboard.
type DashboardController interface {
	Load(ctx context.Context) error
	OnTriggerClicked(ctx context.Context) error
	State() dashboard.State
}

// BoardReader exposes what is currently rendered.
type BoardReader interface {
	Snapshot() dashboard.BoardSnapshot
}

// HealthChecker probes the backend.
type HealthChecker interface {
	Health(ctx context.Context) (dashboard.BackendHealth, error)
}

// PageOptions carries static page settings.
type PageOptions struct {
	Title   string
	Locale  string
	Backend string
}

// Handler wires the HTTP transport to the dashboard controller.
type Handler struct {
	controller DashboardController
	board      BoardReader
	health     HealthChecker
	page       PageOptions
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(controller DashboardController, board BoardReader, health HealthChecker, page PageOptions, logger *slog.Logger) *Handler {
	return &Handler{
		controller: controller,
		board:      board,
		health:     health,
		page:       page,
		logger:     logger.With("component", "http.handler"),
	}
}

// dashboardResponse is the JSON form of the whole dashboard.
type dashboardResponse struct {
	dashboard.BoardSnapshot
	State dashboard.State `json:"state"`
}

func (h *Handler) snapshot() dashboardResponse {
	return dashboardResponse{
		BoardSnapshot: h.board.Snapshot(),
		State:         h.controller.State(),
	}
}

// Page renders the dashboard as HTML.
func (h *Handler) Page(c *gin.Context) {
	data := newPageData(h.page, h.board.Snapshot(), h.controller.State())
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := dashboardTemplate.Execute(c.Writer, data); err != nil {
		h.logger.Error("render dashboard page failed", "error", err)
	}
}

// SubmitRefresh is the form target of the trigger button. A click that
// lands while another call is running just shows the page again.
func (h *Handler) SubmitRefresh(c *gin.Context) {
	if err := h.trigger(c); err != nil && !errors.Is(err, dashboard.ErrBusy) {
		abortWithError(c, asHTTPError(err))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// GetDashboard returns the dashboard snapshot.
func (h *Handler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot())
}

// RunETL triggers the backend refresh job.
func (h *Handler) RunETL(c *gin.Context) {
	if err := h.trigger(c); err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// ReloadInsights re-runs the fetch sequence.
func (h *Handler) ReloadInsights(c *gin.Context) {
	if err := h.controller.Load(detached(c)); err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// Health reports service and backend health. Backend trouble is reported in
// the body; the service itself answered, so the status stays 200.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	resp := gin.H{"status": "ok", "backend": h.page.Backend}
	upstream, err := h.health.Health(ctx)
	if err != nil {
		h.logger.Warn("backend health check failed", "error", err)
		resp["upstream"] = gin.H{"status": "unreachable", "error": errMessage(err)}
	} else {
		resp["upstream"] = upstream
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) trigger(c *gin.Context) error {
	h.logger.Info("refresh requested", "request_id", c.GetString(requestIDKey))
	return h.controller.OnTriggerClicked(detached(c))
}

// detached keeps a started backend call alive when the client goes away.
func detached(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
