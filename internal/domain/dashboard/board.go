package dashboard

import (
	"sync"
	"time"
)

// Board is the toolkit-neutral view model. It implements View and every
// surface draws from its snapshots.
type Board struct {
	mu           sync.RWMutex
	emptyMessage string
	cardDelay    time.Duration
	now          func() time.Time

	status  Status
	cards   []Card
	empty   bool
	trigger TriggerState
}

// BoardSnapshot is an immutable copy of the board. EmptyMessage is set only
// when the last render had no insights; Cards is then empty.
type BoardSnapshot struct {
	Status       Status       `json:"status"`
	Cards        []Card       `json:"cards"`
	EmptyMessage string       `json:"emptyMessage,omitempty"`
	Trigger      TriggerState `json:"trigger"`
}

// NewBoard builds an empty board with the trigger disabled.
func NewBoard(emptyMessage string, cardDelay time.Duration) *Board {
	if cardDelay < 0 {
		cardDelay = DefaultCardDelay
	}
	return &Board{
		emptyMessage: emptyMessage,
		cardDelay:    cardDelay,
		now:          time.Now,
		status:       Status{Tone: ToneIdle},
		cards:        []Card{},
	}
}

// SetStatus implements StatusAnnouncer.
func (b *Board) SetStatus(message string, tone Tone) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = Status{Message: message, Tone: tone, UpdatedAt: b.now().UTC()}
}

// Render implements InsightRenderer. The previous contents are replaced
// wholesale and order is preserved.
func (b *Board) Render(insights []Insight) {
	cards := make([]Card, 0, len(insights))
	for i, insight := range insights {
		cards = append(cards, Card{
			Index:     i,
			FocusArea: insight.FocusArea,
			City:      insight.City,
			Headline:  insight.Headline,
			Text:      insight.Insight,
			DelayMs:   (time.Duration(i) * b.cardDelay).Milliseconds(),
		})
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.cards = cards
	b.empty = len(cards) == 0
}

// SetTriggerEnabled implements TriggerControl.
func (b *Board) SetTriggerEnabled(enabled bool, reason string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if enabled {
		reason = ""
	}
	b.trigger = TriggerState{Enabled: enabled, Reason: reason}
}

// Snapshot copies the current board.
func (b *Board) Snapshot() BoardSnapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	cards := make([]Card, len(b.cards))
	copy(cards, b.cards)
	snap := BoardSnapshot{
		Status:  b.status,
		Cards:   cards,
		Trigger: b.trigger,
	}
	if b.empty {
		snap.EmptyMessage = b.emptyMessage
	}
	return snap
}

var _ View = (*Board)(nil)
