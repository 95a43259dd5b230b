package insightsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yanqian/city-insights/internal/domain/dashboard"
	apperrors "github.com/yanqian/city-insights/pkg/errors"
)

const (
	insightsPath = "/insights"
	refreshPath  = "/etl/run"
	healthPath   = "/health"

	errorBodyLimit = 4 << 10
)

// Client talks to the insights backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a backend client for an already resolved base URL. A zero
// timeout leaves requests bounded only by the transport and the context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the base every endpoint is joined to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchInsights issues GET {base}/insights.
func (c *Client) FetchInsights(ctx context.Context) ([]dashboard.Insight, error) {
	body, err := c.do(ctx, http.MethodGet, insightsPath)
	if err != nil {
		return nil, err
	}

	var insights []dashboard.Insight
	if err := json.Unmarshal(body, &insights); err != nil {
		return nil, unreachable("decode insights response", err)
	}
	if insights == nil {
		return nil, unreachable("decode insights response", fmt.Errorf("expected JSON array, got %s", strings.TrimSpace(string(body))))
	}
	return insights, nil
}

// TriggerRefresh issues POST {base}/etl/run with an empty body. The reply
// body is ignored.
func (c *Client) TriggerRefresh(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, refreshPath)
	return err
}

// Health issues GET {base}/health.
func (c *Client) Health(ctx context.Context) (dashboard.BackendHealth, error) {
	body, err := c.do(ctx, http.MethodGet, healthPath)
	if err != nil {
		return dashboard.BackendHealth{}, err
	}
	var health dashboard.BackendHealth
	if err := json.Unmarshal(body, &health); err != nil {
		return dashboard.BackendHealth{}, unreachable("decode health response", err)
	}
	return health, nil
}

func (c *Client) do(ctx context.Context, method, path string) ([]byte, error) {
	endpoint := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, http.NoBody)
	if err != nil {
		return nil, unreachable("build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, unreachable(method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, unreachable(method+" "+path, fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(payload))))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, unreachable("read response", err)
	}
	return body, nil
}

func unreachable(op string, err error) error {
	return apperrors.Wrap(dashboard.CodeBackendUnreachable, "backend unreachable: "+op, err)
}

var _ dashboard.BackendClient = (*Client)(nil)
