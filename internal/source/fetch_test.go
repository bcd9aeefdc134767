package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestFetcherGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer server.Close()

	f := NewFetcher(zap.NewNop().Sugar())
	body, err := f.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(body) != "hello" {
		t.Errorf("body = %q, want %q", body, "hello")
	}
}

func TestFetcherRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("eventually"))
	}))
	defer server.Close()

	f := NewFetcher(zap.NewNop().Sugar())
	body, err := f.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get failed after retries: %v", err)
	}
	if string(body) != "eventually" {
		t.Errorf("body = %q, want %q", body, "eventually")
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestFetcherDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	f := NewFetcher(zap.NewNop().Sugar())
	if _, err := f.Get(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for 403 response")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (no retry on client error)", attempts)
	}
}

func TestFetcherGivesUpAfterMaxAttempts(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	f := NewFetcher(zap.NewNop().Sugar())
	if _, err := f.Get(context.Background(), server.URL); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if attempts != maxAttempts {
		t.Errorf("attempts = %d, want %d", attempts, maxAttempts)
	}
}
