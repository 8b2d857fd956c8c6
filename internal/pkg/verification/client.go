// Package verification is the client of the external one-time code provider.
package verification

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/oms-tech/reviews/internal/pkg/httpx"
)

// SendOutcome is the provider's answer to a code dispatch request
type SendOutcome int

const (
	SendSuccess SendOutcome = iota
	SendInvalidIdentifier
	SendRateLimited
)

func (o SendOutcome) String() string {
	switch o {
	case SendSuccess:
		return "SUCCESS"
	case SendInvalidIdentifier:
		return "INVALID_IDENTIFIER"
	default:
		return "RATE_LIMITED"
	}
}

// Provider status codes
const (
	statusSuccess      = "SUCCESS"
	statusInvalidEmail = "INVALID_EMAIL"
	statusInvalidUser  = "INVALID_USERNAME"
)

var errMissingStatus = errors.New("verification provider returned no status")

// ParseStatus maps a provider status onto a SendOutcome. Any unknown
// non-success status is treated as rate limiting.
func ParseStatus(status string) (SendOutcome, error) {
	switch s := strings.ToUpper(strings.TrimSpace(status)); s {
	case "":
		return 0, errMissingStatus
	case statusSuccess:
		return SendSuccess, nil
	case statusInvalidEmail, statusInvalidUser:
		return SendInvalidIdentifier, nil
	default:
		return SendRateLimited, nil
	}
}

// Config holds the provider connection settings
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// HTTPClient talks to the verification provider over HTTP
type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewHTTPClient creates a provider client
func NewHTTPClient(cfg Config) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	Username string `json:"username"`
}

type sendResponse struct {
	Status string `json:"status"`
}

type matchRequest struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

type matchResponse struct {
	Match bool `json:"match"`
}

// Send asks the provider to issue a code to username
func (c *HTTPClient) Send(ctx context.Context, username string) (SendOutcome, error) {
	var resp sendResponse
	if err := httpx.PostJSON(ctx, c.http, c.baseURL+"/verifications", c.headers(), sendRequest{Username: username}, &resp); err != nil {
		return 0, fmt.Errorf("send verification code: %w", err)
	}
	return ParseStatus(resp.Status)
}

// Match reports whether code is the one most recently issued to username
func (c *HTTPClient) Match(ctx context.Context, username, code string) (bool, error) {
	var resp matchResponse
	req := matchRequest{Username: username, Code: code}
	if err := httpx.PostJSON(ctx, c.http, c.baseURL+"/verifications/check", c.headers(), req, &resp); err != nil {
		return false, fmt.Errorf("check verification code: %w", err)
	}
	return resp.Match, nil
}

func (c *HTTPClient) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + c.apiKey}
}
