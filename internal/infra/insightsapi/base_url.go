package insightsapi

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// LocalDefaultBaseURL is the development backend address.
const LocalDefaultBaseURL = "http://127.0.0.1:8000"

var devServerHost = regexp.MustCompile(`(?i):(5500|5501)$`)

// PageLocation is where the dashboard itself is served from.
type PageLocation struct {
	Scheme string
	Host   string
}

// Origin is scheme://host, or "" when either part is missing.
func (p PageLocation) Origin() string {
	if p.Scheme == "" || p.Host == "" {
		return ""
	}
	return p.Scheme + "://" + p.Host
}

// IsLocalFile reports whether the page has no network origin.
func (p PageLocation) IsLocalFile() bool {
	return p.Scheme == "" || strings.EqualFold(p.Scheme, "file")
}

// ParsePageLocation parses the dashboard's public URL. An empty string yields
// the zero location, which counts as a local file. Network pages must be
// http or https with a host.
func ParsePageLocation(raw string) (PageLocation, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PageLocation{}, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return PageLocation{}, fmt.Errorf("parse page url: %w", err)
	}
	scheme := strings.ToLower(u.Scheme)
	switch scheme {
	case "file":
		return PageLocation{Scheme: scheme, Host: u.Host}, nil
	case "http", "https":
		if u.Host == "" {
			return PageLocation{}, fmt.Errorf("page url %q has no host", raw)
		}
		return PageLocation{Scheme: scheme, Host: u.Host}, nil
	default:
		// "host:port" parses with the host as its scheme
		return PageLocation{}, fmt.Errorf("page url %q needs an http, https or file scheme", raw)
	}
}

// ResolveBaseURL picks the backend base: the explicit override when set;
// the local default for file pages and the :5500/:5501 dev servers; the
// page's own origin otherwise.
func ResolveBaseURL(override string, page PageLocation) string {
	if v := strings.TrimSpace(override); v != "" {
		return strings.TrimRight(v, "/")
	}
	if page.IsLocalFile() || devServerHost.MatchString(page.Host) {
		return LocalDefaultBaseURL
	}
	if origin := page.Origin(); origin != "" {
		return origin
	}
	return LocalDefaultBaseURL
}
