package revalidate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRevalidate(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/revalidate" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var req revalidateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotPath = req.Path
		_ = json.NewEncoder(w).Encode(revalidateResponse{Revalidated: true})
	}))
	defer server.Close()

	client := NewHTTPClient(Config{BaseURL: server.URL, Token: "tok"})
	if err := client.Revalidate(context.Background(), "/courses/CS-6340"); err != nil {
		t.Fatalf("Revalidate() error = %v", err)
	}
	if gotPath != "/courses/CS-6340" {
		t.Errorf("revalidated path = %q", gotPath)
	}
}

func TestRevalidateNotConfirmed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(revalidateResponse{Revalidated: false})
	}))
	defer server.Close()

	client := NewHTTPClient(Config{BaseURL: server.URL})
	if err := client.Revalidate(context.Background(), "/courses/CS-6340"); err == nil {
		t.Fatal("expected error when frontend does not confirm")
	}
}

func TestRevalidateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(Config{BaseURL: server.URL})
	if err := client.Revalidate(context.Background(), "/courses/CS-6340"); err == nil {
		t.Fatal("expected error on 500")
	}
}
