// Package tui renders the insights dashboard in a terminal. It drives the
// same controller state machine as the web surface.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yanqian/city-insights/internal/domain/dashboard"
)

const (
	pollInterval  = 150 * time.Millisecond
	maxCardWidth  = 72
	busyNoticeMsg = "another backend call is still running"
)

// Controller is the dashboard command surface.
type Controller interface {
	Load(ctx context.Context) error
	OnTriggerClicked(ctx context.Context) error
	State() dashboard.State
}

// BoardReader exposes what is currently rendered.
type BoardReader interface {
	Snapshot() dashboard.BoardSnapshot
}

type loadDoneMsg struct{ err error }

type refreshDoneMsg struct{ err error }

type pollMsg time.Time

// Model is the bubbletea model.
type Model struct {
	ctx        context.Context
	controller Controller
	board      BoardReader
	title      string
	backend    string
	trigger    string
	styles     Styles
	width      int
	notice     string
}

// New builds the model. Commands run with ctx.
func New(ctx context.Context, controller Controller, board BoardReader, title, backend, triggerLabel string) Model {
	return Model{
		ctx:        ctx,
		controller: controller,
		board:      board,
		title:      title,
		backend:    backend,
		trigger:    triggerLabel,
		styles:     DefaultStyles(),
	}
}

// Init fetches insights, as on page load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), poll())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.notice = ""
			return m, tea.Batch(m.refreshCmd(), poll())
		case "l":
			m.notice = ""
			return m, tea.Batch(m.loadCmd(), poll())
		}
	case loadDoneMsg:
		m.notice = noticeFor(msg.err)
	case refreshDoneMsg:
		m.notice = noticeFor(msg.err)
	case pollMsg:
		if m.controller.State().InFlight {
			return m, poll()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	snap := m.board.Snapshot()
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")
	if m.backend != "" {
		b.WriteString(m.styles.Backend.Render("backend: " + m.backend))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.status(snap.Status.Tone).Render(snap.Status.Message))
	b.WriteString("\n")

	if snap.EmptyMessage != "" {
		b.WriteString(m.styles.Empty.Render(snap.EmptyMessage))
		b.WriteString("\n")
	}
	cards := make([]string, 0, len(snap.Cards))
	for _, card := range snap.Cards {
		cards = append(cards, m.renderCard(card))
	}
	if len(cards) > 0 {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(m.styles.Notice.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help(snap.Trigger))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCard(card dashboard.Card) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Focus.Render(strings.ToUpper(card.FocusArea)),
		m.styles.City.Render(card.City),
		m.styles.Body.Render(card.Text),
	)
	return m.styles.Card.Width(m.cardWidth()).Render(content)
}

func (m Model) cardWidth() int {
	if m.width <= 0 {
		return maxCardWidth
	}
	return min(m.width-4, maxCardWidth)
}

func (m Model) help(trigger dashboard.TriggerState) string {
	action := "[r] " + m.trigger
	if !trigger.Enabled {
		action = m.styles.Disabled.Render(action)
		if trigger.Reason != "" {
			action += " " + m.styles.Help.Render("("+trigger.Reason+")")
		}
	} else {
		action = m.styles.Help.Render(action)
	}
	return action + m.styles.Help.Render("  [l] reload  [q] quit")
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadDoneMsg{err: m.controller.Load(m.ctx)}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: m.controller.OnTriggerClicked(m.ctx)}
	}
}

func poll() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return pollMsg(t) })
}

func noticeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, dashboard.ErrBusy):
		return busyNoticeMsg
	default:
		return err.Error()
	}
}
