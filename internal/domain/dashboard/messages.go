package dashboard

import "strings"

// Messages holds every user-visible string the controller announces.
type Messages struct {
	Loading        string
	Ready          string
	OfflineShowing string
	LoadFailed     string
	EnableBackend  string
	Running        string
	Updated        string
	RefreshFailed  string
	DisabledReason string
	Empty          string
	TriggerLabel   string
}

var portugueseMessages = Messages{
	Loading:        "Carregando tendências com dados públicos…",
	Ready:          "Pipeline pronto. Aperte o botão para regenerar com IA.",
	OfflineShowing: "Backend offline. Mostrando insights de fallback.",
	LoadFailed:     "Não foi possível carregar os dados. Tente novamente.",
	EnableBackend:  "Ative o backend para rodar o ETL com IA.",
	Running:        "Rodando ETL com IA…",
	Updated:        "Insights atualizados minutos atrás.",
	RefreshFailed:  "Erro ao executar ETL. Verifique o backend.",
	DisabledReason: "Inicie o backend para liberar esta ação.",
	Empty:          "Nenhuma iniciativa encontrada ainda.",
	TriggerLabel:   "Rodar ETL com IA",
}

var englishMessages = Messages{
	Loading:        "Loading insights from public data…",
	Ready:          "Pipeline ready. Press the button to regenerate with AI.",
	OfflineShowing: "Backend offline. Showing fallback insights.",
	LoadFailed:     "Could not load the data. Try again.",
	EnableBackend:  "Start the backend to run the AI ETL.",
	Running:        "Running AI ETL…",
	Updated:        "Insights updated a few minutes ago.",
	RefreshFailed:  "ETL run failed. Check the backend.",
	DisabledReason: "Start the backend to enable this action.",
	Empty:          "No initiatives found yet.",
	TriggerLabel:   "Run AI ETL",
}

// MessagesFor returns the message set for a locale tag. Unknown tags fall
// back to Brazilian Portuguese.
func MessagesFor(locale string) Messages {
	tag := strings.ToLower(strings.TrimSpace(locale))
	if tag == "en" || strings.HasPrefix(tag, "en-") || strings.HasPrefix(tag, "en_") {
		return englishMessages
	}
	return portugueseMessages
}

// SupportedLocale reports whether MessagesFor has a dedicated set for locale.
func SupportedLocale(locale string) bool {
	tag := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case tag == "pt", tag == "pt-br", tag == "pt_br":
		return true
	case tag == "en", strings.HasPrefix(tag, "en-"), strings.HasPrefix(tag, "en_"):
		return true
	}
	return false
}
