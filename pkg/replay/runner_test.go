package replay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/blackcoderx/reqmd/pkg/storage"
)

func TestRunner_CaptureAll(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	collection := &storage.Collection{
		Title: "Test API",
		Requests: []storage.Request{
			{Name: "Ping", Method: "GET", URL: server.URL + "/ping"},
		},
		Groups: []storage.Group{
			{
				Name: "Users",
				Requests: []storage.Request{
					{Name: "List Users", Method: "GET", URL: server.URL + "/users"},
				},
			},
		},
	}

	runner := NewRunner(NewExecutor(storage.NewEnvChain(nil)), 0)
	results := runner.CaptureAll(context.Background(), collection)

	if calls != 2 {
		t.Errorf("server calls = %d, want 2", calls)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	if results[0].Name != "Ping" || len(results[0].Path) != 0 {
		t.Errorf("results[0] = %q (path %v), want ungrouped Ping", results[0].Name, results[0].Path)
	}
	if results[1].Name != "List Users" || strings.Join(results[1].Path, "/") != "Users" {
		t.Errorf("results[1] = %q (path %v), want Users/List Users", results[1].Name, results[1].Path)
	}

	for _, res := range results {
		if res.Err != nil {
			t.Errorf("result %q error = %v", res.Name, res.Err)
		}
		if res.Status != http.StatusOK {
			t.Errorf("result %q status = %d, want %d", res.Name, res.Status, http.StatusOK)
		}
	}

	if collection.Requests[0].LastExchange == nil {
		t.Fatal("ungrouped request LastExchange not refreshed")
	}
	if collection.Groups[0].Requests[0].LastExchange == nil {
		t.Fatal("grouped request LastExchange not refreshed")
	}
	if got := collection.Requests[0].LastExchange.Body; got != `{"ok": true}` {
		t.Errorf("LastExchange.Body = %q, want %q", got, `{"ok": true}`)
	}
}

func TestRunner_CaptureAll_RecordsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	collection := &storage.Collection{
		Title: "Flaky API",
		Requests: []storage.Request{
			{Name: "Broken", Method: "GET", URL: "http://127.0.0.1:1/unreachable"},
			{Name: "Working", Method: "GET", URL: server.URL},
		},
	}

	runner := NewRunner(NewExecutor(storage.NewEnvChain(nil)), 0)
	results := runner.CaptureAll(context.Background(), collection)

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Err == nil {
		t.Error("results[0].Err = nil, want connection error")
	}
	if results[1].Err != nil {
		t.Errorf("results[1].Err = %v, want nil", results[1].Err)
	}

	if collection.Requests[0].LastExchange != nil {
		t.Error("failed request should keep its previous exchange")
	}
	if collection.Requests[1].LastExchange == nil {
		t.Error("working request LastExchange not refreshed")
	}
}

func TestRunner_RateLimitSpacing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	collection := &storage.Collection{
		Title: "Paced API",
		Requests: []storage.Request{
			{Name: "One", Method: "GET", URL: server.URL},
			{Name: "Two", Method: "GET", URL: server.URL},
		},
	}

	// Burst of 1 at 20 rps forces at least 50ms between the sends.
	runner := &Runner{
		executor: NewExecutor(storage.NewEnvChain(nil)),
		limiter:  rate.NewLimiter(rate.Limit(20), 1),
	}

	start := time.Now()
	results := runner.CaptureAll(context.Background(), collection)
	elapsed := time.Since(start)

	for _, res := range results {
		if res.Err != nil {
			t.Fatalf("result %q error = %v", res.Name, res.Err)
		}
	}
	if elapsed < 40*time.Millisecond {
		t.Errorf("elapsed = %v, want at least 40ms of limiter spacing", elapsed)
	}
}

func TestRunner_CanceledContext(t *testing.T) {
	collection := &storage.Collection{
		Title: "Canceled",
		Requests: []storage.Request{
			{Name: "Never Sent", Method: "GET", URL: "http://127.0.0.1:1"},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(NewExecutor(storage.NewEnvChain(nil)), 0)
	results := runner.CaptureAll(ctx, collection)

	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Err == nil {
		t.Error("results[0].Err = nil, want context error")
	}
}

func TestFormatResults(t *testing.T) {
	results := []Result{
		{Name: "Ping", Status: 200, Took: 12 * time.Millisecond},
		{Name: "List Users", Path: []string{"Users"}, Status: 200, Took: 30 * time.Millisecond},
		{Name: "Broken", Err: errors.New("connection refused")},
	}

	got := FormatResults(results)

	for _, want := range []string{
		"✓ Ping: 200 (12ms)",
		"✓ Users/List Users: 200 (30ms)",
		"✗ Broken: connection refused",
		"2/3 requests captured",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatResults() missing %q in:\n%s", want, got)
		}
	}
}
