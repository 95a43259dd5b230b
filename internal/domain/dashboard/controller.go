package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	apperrors "github.com/yanqian/city-insights/pkg/errors"
	"github.com/yanqian/city-insights/pkg/metrics"
)

// ErrBusy is returned when a command arrives while another backend call of
// the same controller is still in flight.
var ErrBusy = errors.New("dashboard: operation already in progress")

// Controller sequences backend calls with status and render updates. One
// instance owns one View; at most one backend call is in flight at a time.
type Controller struct {
	cfg      Config
	client   BackendClient
	view     View
	counters *metrics.Counters
	logger   *slog.Logger

	inFlight atomic.Bool

	mu        sync.RWMutex
	phase     Phase
	available bool
	loaded    bool
}

// NewController wires a controller. Nothing is fetched until Load.
func NewController(cfg Config, client BackendClient, view View, counters *metrics.Counters, logger *slog.Logger) *Controller {
	if counters == nil {
		counters = metrics.NewCounters()
	}
	return &Controller{
		cfg:      cfg,
		client:   client,
		view:     view,
		counters: counters,
		logger:   logger.With("component", "dashboard.controller"),
		phase:    PhaseIdle,
	}
}

// Load runs the fetch sequence, as on page load.
func (c *Controller) Load(ctx context.Context) error {
	if !c.inFlight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer c.inFlight.Store(false)

	c.fetchSequence(ctx)
	return nil
}

// OnTriggerClicked runs the refresh job and, when it succeeds, re-fetches.
// Backend failures end up in the status; only ErrBusy is returned.
//
// An unavailable backend is reported before the busy check, so a click
// during the first load asks for the backend instead of returning ErrBusy.
// When the refresh succeeds but the re-fetch fails, Updated is not
// announced: the load failure stays visible and the trigger stays disabled
// until a later fetch succeeds.
func (c *Controller) OnTriggerClicked(ctx context.Context) error {
	msgs := c.cfg.Messages
	if !c.isAvailable() {
		c.view.SetStatus(msgs.EnableBackend, ToneError)
		return nil
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer c.inFlight.Store(false)

	// a failed fetch may have finished between the check and the swap
	if !c.isAvailable() {
		c.view.SetStatus(msgs.EnableBackend, ToneError)
		return nil
	}

	c.view.SetTriggerEnabled(false, "")
	c.view.SetStatus(msgs.Running, ToneLoading)
	c.setPhase(PhaseRunning)

	if err := c.client.TriggerRefresh(ctx); err != nil {
		c.counters.RefreshFailed()
		c.logger.Error("etl refresh failed", "code", apperrors.CodeOf(err), "error", err)
		c.view.SetStatus(msgs.RefreshFailed, ToneError)
		c.setPhase(PhaseError)
		c.view.SetTriggerEnabled(true, "")
		return nil
	}
	c.counters.RefreshSucceeded()
	c.logger.Info("etl refresh completed")

	if c.fetchSequence(ctx) {
		c.view.SetStatus(msgs.Updated, ToneSuccess)
	}
	return nil
}

// State reports the controller-owned part of the dashboard.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return State{
		Phase:     c.phase,
		Available: c.available,
		InFlight:  c.inFlight.Load(),
		Counters:  c.counters.Snapshot(),
	}
}

func (c *Controller) fetchSequence(ctx context.Context) bool {
	msgs := c.cfg.Messages
	c.setPhase(PhaseLoading)
	c.view.SetStatus(msgs.Loading, ToneLoading)

	insights, err := c.client.FetchInsights(ctx)
	if err != nil {
		c.counters.FetchFailed()
		c.logger.Error("fetch insights failed", "code", apperrors.CodeOf(err), "error", err)
		c.applyFetchFailure()
		return false
	}
	c.counters.FetchSucceeded()
	c.logger.Info("insights fetched", "count", len(insights))

	c.view.Render(insights)
	c.mu.Lock()
	c.available = true
	c.loaded = true
	c.phase = PhaseReady
	c.mu.Unlock()
	c.view.SetTriggerEnabled(true, "")
	c.view.SetStatus(msgs.Ready, ToneIdle)
	return true
}

// applyFetchFailure keeps the rendered cards consistent with exactly one
// source: the last successful fetch, the fallback set, or the empty state.
func (c *Controller) applyFetchFailure() {
	msgs := c.cfg.Messages

	c.mu.Lock()
	c.available = false
	loaded := c.loaded
	c.mu.Unlock()

	c.view.SetTriggerEnabled(false, msgs.DisabledReason)

	switch {
	case !loaded && len(c.cfg.Fallback) > 0:
		c.view.Render(c.cfg.Fallback)
		c.view.SetStatus(msgs.OfflineShowing, ToneError)
		c.setPhase(PhaseDegraded)
	case !loaded:
		c.view.Render(nil)
		c.view.SetStatus(msgs.LoadFailed, ToneError)
		c.setPhase(PhaseError)
	default:
		c.view.SetStatus(msgs.LoadFailed, ToneError)
		c.setPhase(PhaseError)
	}
}

func (c *Controller) isAvailable() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.available
}

func (c *Controller) setPhase(phase Phase) {
	c.mu.Lock()
	c.phase = phase
	c.mu.Unlock()
}
