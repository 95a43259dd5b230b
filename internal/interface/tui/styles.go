package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yanqian/city-insights/internal/domain/dashboard"
)

var (
	colorSky   = lipgloss.Color("#38BDF8")
	colorGreen = lipgloss.Color("#22C55E")
	colorRose  = lipgloss.Color("#F43F5E")
	colorSlate = lipgloss.Color("#94A3B8")
	colorText  = lipgloss.Color("#E2E8F0")
)

// Styles groups the lipgloss styles used by the model.
type Styles struct {
	Title    lipgloss.Style
	Backend  lipgloss.Style
	Status   map[dashboard.Tone]lipgloss.Style
	Card     lipgloss.Style
	Focus    lipgloss.Style
	City     lipgloss.Style
	Body     lipgloss.Style
	Empty    lipgloss.Style
	Help     lipgloss.Style
	Disabled lipgloss.Style
	Notice   lipgloss.Style
}

// DefaultStyles mirrors the web dashboard palette.
func DefaultStyles() Styles {
	statusBase := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorText).MarginBottom(1),
		Backend: lipgloss.NewStyle().Foreground(colorSlate).Italic(true),
		Status: map[dashboard.Tone]lipgloss.Style{
			dashboard.ToneIdle:    statusBase.Foreground(colorText),
			dashboard.ToneLoading: statusBase.Foreground(colorSky),
			dashboard.ToneSuccess: statusBase.Foreground(colorGreen),
			dashboard.ToneError:   statusBase.Foreground(colorRose),
		},
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSlate).
			Padding(0, 1),
		Focus:    lipgloss.NewStyle().Foreground(colorSky).Bold(true),
		City:     lipgloss.NewStyle().Foreground(colorText).Bold(true),
		Body:     lipgloss.NewStyle().Foreground(colorText),
		Empty:    lipgloss.NewStyle().Foreground(colorSlate).Italic(true).Padding(1, 0),
		Help:     lipgloss.NewStyle().Foreground(colorSlate),
		Disabled: lipgloss.NewStyle().Foreground(colorSlate).Strikethrough(true),
		Notice:   lipgloss.NewStyle().Foreground(colorRose),
	}
}

func (s Styles) status(tone dashboard.Tone) lipgloss.Style {
	if style, ok := s.Status[tone]; ok {
		return style
	}
	return s.Status[dashboard.ToneIdle]
}
