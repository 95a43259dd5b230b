package http

import (
	"embed"
	"html/template"

	"github.com/yanqian/city-insights/internal/domain/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

// html/template escapes every card field; backend text never becomes markup.
var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type pageData struct {
	Title        string
	Lang         string
	Button       string
	Status       dashboard.Status
	Cards        []dashboard.Card
	EmptyMessage string
	Trigger      dashboard.TriggerState
	Phase        dashboard.Phase
	Busy         bool
}

func newPageData(opts PageOptions, snap dashboard.BoardSnapshot, state dashboard.State) pageData {
	lang := opts.Locale
	if lang == "" {
		lang = "pt-BR"
	}
	return pageData{
		Title:        opts.Title,
		Lang:         lang,
		Button:       dashboard.MessagesFor(lang).TriggerLabel,
		Status:       snap.Status,
		Cards:        snap.Cards,
		EmptyMessage: snap.EmptyMessage,
		Trigger:      snap.Trigger,
		Phase:        state.Phase,
		Busy:         state.InFlight,
	}
}
