package insightsapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		override string
		page     string
		want     string
	}{
		{name: "live server port", page: "http://localhost:5500/index.html", want: LocalDefaultBaseURL},
		{name: "alternate live server port", page: "http://127.0.0.1:5501", want: LocalDefaultBaseURL},
		{name: "local file", page: "file:///home/dev/app/frontend/index.html", want: LocalDefaultBaseURL},
		{name: "no page url", page: "", want: LocalDefaultBaseURL},
		{name: "production origin", page: "https://insights.example.com/dashboard", want: "https://insights.example.com"},
		{name: "production origin with port", page: "http://10.0.0.5:8080/", want: "http://10.0.0.5:8080"},
		{name: "override beats dev port", override: "https://api.example.com/", page: "http://localhost:5500", want: "https://api.example.com"},
		{name: "override beats origin", override: "http://backend:8000", page: "https://insights.example.com", want: "http://backend:8000"},
		{name: "blank override ignored", override: "   ", page: "https://insights.example.com", want: "https://insights.example.com"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			page, err := ParsePageLocation(tt.page)
			require.NoError(t, err)
			require.Equal(t, tt.want, ResolveBaseURL(tt.override, page))
		})
	}
}

func TestParsePageLocationRejectsBadURLs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{name: "host and port only", raw: "localhost:5500", wantErr: "scheme"},
		{name: "host and tls port only", raw: "insights.example.com:443", wantErr: "scheme"},
		{name: "bare host", raw: "insights.example.com", wantErr: "scheme"},
		{name: "unsupported scheme", raw: "ftp://insights.example.com", wantErr: "scheme"},
		{name: "http without host", raw: "http:///dashboard", wantErr: "host"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParsePageLocation(tt.raw)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParsePageLocationKeepsSchemeAndHost(t *testing.T) {
	page, err := ParsePageLocation("HTTPS://insights.example.com:443/dashboard")
	require.NoError(t, err)
	require.Equal(t, PageLocation{Scheme: "https", Host: "insights.example.com:443"}, page)
	require.Equal(t, "https://insights.example.com:443", ResolveBaseURL("", page))

	page, err = ParsePageLocation("file:///home/dev/index.html")
	require.NoError(t, err)
	require.True(t, page.IsLocalFile())
}
