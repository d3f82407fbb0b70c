package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func isFallback(q Quote) bool {
	for _, f := range Fallbacks {
		if q == f {
			return true
		}
	}
	return false
}

func newTestClient(url string) *Client {
	return NewClient(url, time.Second, 600, zerolog.Nop())
}

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"Talk is cheap. Show me the code.","author":"Linus Torvalds"}`))
	}))
	defer srv.Close()

	q := newTestClient(srv.URL).Fetch(context.Background())
	if q.Text != "Talk is cheap. Show me the code." || q.Author != "Linus Torvalds" {
		t.Errorf("Unexpected quote: %+v", q)
	}
}

func TestFetchNonSuccessStatusFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if q := newTestClient(srv.URL).Fetch(context.Background()); !isFallback(q) {
		t.Errorf("Expected fallback quote, got %+v", q)
	}
}

func TestFetchBadBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	if q := newTestClient(srv.URL).Fetch(context.Background()); !isFallback(q) {
		t.Errorf("Expected fallback quote, got %+v", q)
	}
}

func TestFetchEmptyContentFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"  ","author":"Nobody"}`))
	}))
	defer srv.Close()

	if q := newTestClient(srv.URL).Fetch(context.Background()); !isFallback(q) {
		t.Errorf("Expected fallback quote, got %+v", q)
	}
}

func TestFetchTransportErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Connection refused from here on

	if q := newTestClient(srv.URL).Fetch(context.Background()); !isFallback(q) {
		t.Errorf("Expected fallback quote, got %+v", q)
	}
}

func TestFetchAlwaysFailingStaysInPool(t *testing.T) {
	c := newTestClient("http://127.0.0.1:0/unreachable")
	for i := 0; i < 10; i++ {
		if q := c.Fetch(context.Background()); !isFallback(q) {
			t.Fatalf("Fetch %d: expected one of the fixed fallbacks, got %+v", i, q)
		}
	}
}

func TestFetchRateCapSkipsRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"content":"hi","author":"a"}`))
	}))
	defer srv.Close()

	// 1 request per minute, burst 1: the second fetch must not hit the server
	c := NewClient(srv.URL, time.Second, 1, zerolog.Nop())
	c.Fetch(context.Background())
	q := c.Fetch(context.Background())

	if requests != 1 {
		t.Errorf("Expected 1 outbound request, got %d", requests)
	}
	if !isFallback(q) {
		t.Errorf("Expected capped fetch to fall back, got %+v", q)
	}
}

func TestFetchMissingAuthorDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"Anonymous wisdom."}`))
	}))
	defer srv.Close()

	q := newTestClient(srv.URL).Fetch(context.Background())
	if q.Author != "Unknown" {
		t.Errorf("Expected Unknown author, got %q", q.Author)
	}
}
