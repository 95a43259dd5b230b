package dashboard

import (
	"context"
	"time"

	"github.com/yanqian/city-insights/pkg/metrics"
)

// CodeBackendUnreachable tags every backend failure: transport errors,
// non-2xx replies and bodies that do not decode.
const CodeBackendUnreachable = "backend_unreachable"

// DefaultCardDelay staggers card presentation by index.
const DefaultCardDelay = 120 * time.Millisecond

// Insight is a single backend-produced observation.
type Insight struct {
	FocusArea string `json:"focus_area" yaml:"focus_area"`
	City      string `json:"city" yaml:"city"`
	Headline  string `json:"headline,omitempty" yaml:"headline,omitempty"`
	Insight   string `json:"insight" yaml:"insight"`
}

// Tone classifies a status for presentation only.
type Tone string

const (
	ToneIdle    Tone = "idle"
	ToneLoading Tone = "loading"
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
)

// Status is the single current banner message.
type Status struct {
	Message   string    `json:"message"`
	Tone      Tone      `json:"tone"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Phase is the controller's state machine position.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseLoading  Phase = "loading"
	PhaseReady    Phase = "ready"
	PhaseDegraded Phase = "degraded"
	PhaseRunning  Phase = "running"
	PhaseError    Phase = "error"
)

// Card is one rendered insight. Text fields are carried verbatim; escaping
// is the rendering surface's job.
type Card struct {
	Index     int    `json:"index"`
	FocusArea string `json:"focus_area"`
	City      string `json:"city"`
	Headline  string `json:"headline,omitempty"`
	Text      string `json:"insight"`
	DelayMs   int64  `json:"delayMs"`
}

// Delay is the card's cosmetic presentation delay.
func (c Card) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// TriggerState describes the refresh control.
type TriggerState struct {
	Enabled bool   `json:"enabled"`
	Reason  string `json:"reason,omitempty"`
}

// State is the controller-owned part of the dashboard.
type State struct {
	Phase     Phase            `json:"phase"`
	Available bool             `json:"available"`
	InFlight  bool             `json:"inFlight"`
	Counters  metrics.Snapshot `json:"counters"`
}

// BackendHealth mirrors the backend's /health reply.
type BackendHealth struct {
	Status       string `json:"status"`
	Model        string `json:"model,omitempty"`
	OutputExists string `json:"output_exists,omitempty"`
}

// Config carries controller inputs resolved at startup.
type Config struct {
	Fallback []Insight
	Messages Messages
}

// BackendClient is the two-operation contract with the insights backend.
type BackendClient interface {
	FetchInsights(ctx context.Context) ([]Insight, error)
	TriggerRefresh(ctx context.Context) error
}

// StatusAnnouncer overwrites the visible status.
type StatusAnnouncer interface {
	SetStatus(message string, tone Tone)
}

// InsightRenderer replaces the card container contents.
type InsightRenderer interface {
	Render(insights []Insight)
}

// TriggerControl enables or disables the refresh control.
type TriggerControl interface {
	SetTriggerEnabled(enabled bool, reason string)
}

// View is everything the controller drives on a rendering surface.
type View interface {
	StatusAnnouncer
	InsightRenderer
	TriggerControl
}
