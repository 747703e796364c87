package integrations

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/matzehuels/ghprofile/pkg/observability"
)

// Doer executes HTTP requests. *http.Client satisfies it; tests substitute
// their own to simulate transport failures.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client provides shared HTTP functionality for API clients.
// It applies default request headers, classifies response statuses and
// reports every request to the registered [observability.HTTPHooks].
type Client struct {
	http    Doer
	headers map[string]string
}

// NewClient creates a Client that sends requests through doer with the given
// default headers. A nil doer falls back to [NewHTTPClient] without a timeout.
// Pass nil for headers if no default headers are needed.
func NewClient(doer Doer, headers map[string]string) *Client {
	if doer == nil {
		doer = NewHTTPClient(0)
	}
	return &Client{
		http:    doer,
		headers: headers,
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	body, err := c.doRequest(ctx, url, headers)
	if err != nil {
		return err
	}
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

func (c *Client) doRequest(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, &NetworkError{Err: err}
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	if code >= 200 && code < 300 {
		return nil
	}
	return &StatusError{StatusCode: code}
}
