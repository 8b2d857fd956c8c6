// Package revalidate asks the frontend to regenerate cached pages.
package revalidate

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/oms-tech/reviews/internal/pkg/httpx"
)

// Config holds the frontend revalidation endpoint settings
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// HTTPClient calls the frontend's revalidation endpoint
type HTTPClient struct {
	endpoint string
	token    string
	http     *http.Client
}

// NewHTTPClient creates a revalidation client
func NewHTTPClient(cfg Config) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/api/revalidate",
		token:    cfg.Token,
		http:     &http.Client{Timeout: timeout},
	}
}

type revalidateRequest struct {
	Path string `json:"path"`
}

type revalidateResponse struct {
	Revalidated bool `json:"revalidated"`
}

// Revalidate invalidates the cached rendering of path
func (c *HTTPClient) Revalidate(ctx context.Context, path string) error {
	var headers map[string]string
	if c.token != "" {
		headers = map[string]string{"Authorization": "Bearer " + c.token}
	}

	var resp revalidateResponse
	if err := httpx.PostJSON(ctx, c.http, c.endpoint, headers, revalidateRequest{Path: path}, &resp); err != nil {
		return fmt.Errorf("revalidate %s: %w", path, err)
	}
	if !resp.Revalidated {
		return fmt.Errorf("revalidate %s: frontend did not confirm", path)
	}
	return nil
}
