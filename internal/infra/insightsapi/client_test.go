package insightsapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/city-insights/internal/domain/dashboard"
	apperrors "github.com/yanqian/city-insights/pkg/errors"
)

func TestFetchInsightsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/insights", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"city":"Curitiba","focus_area":"Mobilidade","headline":"Curitiba acelera mobilidade","insight":"BRT lanes."},
			{"city":"Recife","focus_area":"Energia","insight":"Solar roofs."}
		]`)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", 0)
	insights, err := client.FetchInsights(context.Background())
	require.NoError(t, err)
	require.Equal(t, []dashboard.Insight{
		{City: "Curitiba", FocusArea: "Mobilidade", Headline: "Curitiba acelera mobilidade", Insight: "BRT lanes."},
		{City: "Recife", FocusArea: "Energia", Insight: "Solar roofs."},
	}, insights)
}

func TestFetchInsightsEmptyArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	}))
	defer server.Close()

	insights, err := NewClient(server.URL, 0).FetchInsights(context.Background())
	require.NoError(t, err)
	require.NotNil(t, insights)
	require.Empty(t, insights)
}

func TestFetchInsightsFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"detail":"boom"}`, wantMsg: "status=500"},
		{name: "not found", status: http.StatusNotFound, body: `not here`, wantMsg: "status=404"},
		{name: "malformed body", status: http.StatusOK, body: `{"insights":`, wantMsg: "decode insights response"},
		{name: "object instead of array", status: http.StatusOK, body: `{"city":"Recife"}`, wantMsg: "decode insights response"},
		{name: "null body", status: http.StatusOK, body: `null`, wantMsg: "expected JSON array"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			_, err := NewClient(server.URL, 0).FetchInsights(context.Background())
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, dashboard.CodeBackendUnreachable))
			require.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestFetchInsightsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url, time.Second).FetchInsights(context.Background())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, dashboard.CodeBackendUnreachable))
}

func TestTriggerRefresh(t *testing.T) {
	var gotMethod, gotPath string
	var gotLen int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotLen = r.Method, r.URL.Path, r.ContentLength
		_, _ = io.WriteString(w, `{"status":"ok","result":{"rows":12}}`)
	}))
	defer server.Close()

	require.NoError(t, NewClient(server.URL, 0).TriggerRefresh(context.Background()))
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/etl/run", gotPath)
	require.Zero(t, gotLen)
}

func TestTriggerRefreshNonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"pipeline crashed"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	err := NewClient(server.URL, 0).TriggerRefresh(context.Background())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, dashboard.CodeBackendUnreachable))
	require.Contains(t, err.Error(), "pipeline crashed")
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		_, _ = io.WriteString(w, `{"status":"ok","model":"facebook/bart-large-cnn","output_exists":"true"}`)
	}))
	defer server.Close()

	health, err := NewClient(server.URL, 0).Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, dashboard.BackendHealth{Status: "ok", Model: "facebook/bart-large-cnn", OutputExists: "true"}, health)
}
