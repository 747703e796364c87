package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/ghprofile/pkg/observability"
)

type failingDoer struct{ err error }

func (d failingDoer) Do(*http.Request) (*http.Response, error) { return nil, d.err }

func TestNewClient(t *testing.T) {
	headers := map[string]string{"Accept": "application/json"}
	client := NewClient(nil, headers)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.headers["Accept"] != "application/json" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestNewClientNilHeaders(t *testing.T) {
	client := NewClient(http.DefaultClient, nil)
	if client.headers != nil {
		t.Error("NewClient() should allow nil headers")
	}
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)

	var resp response
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", resp.Message, "hello")
	}
}

func TestClientGetWithHeadersOverridesDefaults(t *testing.T) {
	var gotOverride, gotDefault string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOverride = r.Header.Get("X-Override")
		gotDefault = r.Header.Get("X-Default")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.Client(), map[string]string{
		"X-Override": "default",
		"X-Default":  "kept",
	})

	var resp map[string]string
	err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{"X-Override": "overridden"}, &resp)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
	if gotOverride != "overridden" {
		t.Errorf("X-Override = %q, want %q", gotOverride, "overridden")
	}
	if gotDefault != "kept" {
		t.Errorf("X-Default = %q, want %q", gotDefault, "kept")
	}
}

func TestClientGet404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)

	var resp map[string]string
	err := client.Get(context.Background(), server.URL, &resp)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
		t.Errorf("Get() error = %v, want *StatusError with 404", err)
	}
}

func TestClientGetNetworkError(t *testing.T) {
	client := NewClient(failingDoer{err: errors.New("timeout")}, nil)

	var resp map[string]string
	err := client.Get(context.Background(), "http://example.invalid/users/x", &resp)
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("Get() error = %v, want ErrNetwork", err)
	}
	if err.Error() != "timeout" {
		t.Errorf("Error() = %q, want the underlying message %q", err.Error(), "timeout")
	}
}

func TestClientGetMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)

	var resp map[string]string
	if err := client.Get(context.Background(), server.URL, &resp); err == nil {
		t.Error("Get() should fail on a malformed body")
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		wantErr  bool
		notFound bool
	}{
		{"200 OK", 200, false, false},
		{"204 No Content", 204, false, false},
		{"301 Moved", 301, true, false},
		{"403 Forbidden", 403, true, false},
		{"404 Not Found", 404, true, true},
		{"500 Internal Server Error", 500, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStatus(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkStatus(%d) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if got := errors.Is(err, ErrNotFound); got != tt.notFound {
				t.Errorf("errors.Is(err, ErrNotFound) = %v, want %v", got, tt.notFound)
			}
		})
	}
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{StatusCode: http.StatusForbidden}
	if got, want := err.Error(), "status 403 Forbidden"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWithQuery(t *testing.T) {
	params := url.Values{"sort": {"updated"}, "per_page": {"6"}}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no query", "https://api.github.com/users/octocat/repos", "https://api.github.com/users/octocat/repos?per_page=6&sort=updated"},
		{"existing key replaced", "https://api.github.com/users/octocat/repos?sort=created", "https://api.github.com/users/octocat/repos?per_page=6&sort=updated"},
		{"other keys kept", "https://api.github.com/users/octocat/repos?type=owner", "https://api.github.com/users/octocat/repos?per_page=6&sort=updated&type=owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WithQuery(tt.raw, params)
			if err != nil {
				t.Fatalf("WithQuery() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("WithQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewHTTPClient(t *testing.T) {
	if c := NewHTTPClient(0); c.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", c.Timeout)
	}
	if c := NewHTTPClient(5 * time.Second); c.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", c.Timeout)
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu        sync.Mutex
	requests  []string
	responses []int
	errors    int
}

func (h *recordingHTTPHooks) OnRequest(_ context.Context, _, _, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, path)
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _, _ string, code int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses = append(h.responses, code)
}

func (h *recordingHTTPHooks) OnError(context.Context, string, string, string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors++
}

func TestClientEmitsHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	var resp map[string]string
	_ = NewClient(server.Client(), nil).Get(context.Background(), server.URL+"/users/x", &resp)
	_ = NewClient(failingDoer{err: errors.New("boom")}, nil).Get(context.Background(), server.URL+"/users/y", &resp)

	if len(hooks.requests) != 2 || hooks.requests[0] != "/users/x" || hooks.requests[1] != "/users/y" {
		t.Errorf("requests = %v, want [/users/x /users/y]", hooks.requests)
	}
	if len(hooks.responses) != 1 || hooks.responses[0] != http.StatusTeapot {
		t.Errorf("responses = %v, want [418]", hooks.responses)
	}
	if hooks.errors != 1 {
		t.Errorf("errors = %d, want 1", hooks.errors)
	}
}
