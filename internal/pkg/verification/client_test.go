package verification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		status string
		want   SendOutcome
	}{
		{"SUCCESS", SendSuccess},
		{"success", SendSuccess},
		{"INVALID_EMAIL", SendInvalidIdentifier},
		{"INVALID_USERNAME", SendInvalidIdentifier},
		{"TOO_MANY_ATTEMPTS", SendRateLimited},
		{"MAX_SEND_ATTEMPTS_REACHED", SendRateLimited},
	}

	for _, tc := range testCases {
		got, err := ParseStatus(tc.status)
		if err != nil {
			t.Errorf("ParseStatus(%q) error = %v", tc.status, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStatus(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}

	if _, err := ParseStatus(""); err == nil {
		t.Error("expected error for empty status")
	}
}

func newProvider(t *testing.T, status string, match bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/verifications":
			var req sendRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.Username != "jdoe3" {
				t.Errorf("username = %q", req.Username)
			}
			_ = json.NewEncoder(w).Encode(sendResponse{Status: status})
		case "/verifications/check":
			var req matchRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			_ = json.NewEncoder(w).Encode(matchResponse{Match: match && req.Code == "123456"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestHTTPClientSend(t *testing.T) {
	server := newProvider(t, "INVALID_EMAIL", false)
	defer server.Close()

	client := NewHTTPClient(Config{BaseURL: server.URL + "/", APIKey: "secret-key"})
	outcome, err := client.Send(context.Background(), "jdoe3")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if outcome != SendInvalidIdentifier {
		t.Errorf("Send() = %v, want INVALID_IDENTIFIER", outcome)
	}
}

func TestHTTPClientMatch(t *testing.T) {
	server := newProvider(t, "SUCCESS", true)
	defer server.Close()

	client := NewHTTPClient(Config{BaseURL: server.URL, APIKey: "secret-key"})

	ok, err := client.Match(context.Background(), "jdoe3", "123456")
	if err != nil || !ok {
		t.Fatalf("Match(correct) = %v, %v", ok, err)
	}

	ok, err = client.Match(context.Background(), "jdoe3", "000000")
	if err != nil || ok {
		t.Fatalf("Match(wrong) = %v, %v", ok, err)
	}
}

func TestHTTPClientUpstreamFailure(t *testing.T) {
	server := newProvider(t, "SUCCESS", true)
	defer server.Close()

	client := NewHTTPClient(Config{BaseURL: server.URL, APIKey: "wrong"})

	if _, err := client.Send(context.Background(), "jdoe3"); err == nil {
		t.Error("expected Send() to fail on 401")
	}
	if _, err := client.Match(context.Background(), "jdoe3", "123456"); err == nil {
		t.Error("expected Match() to fail on 401")
	}
}
