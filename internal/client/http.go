package client

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultTimeout applies when the caller passes a zero timeout.
	DefaultTimeout = 30 * time.Second

	// UserAgent identifies the application to the job APIs. HeadHunter
	// rejects requests without one.
	UserAgent = "devsalary/1.0 (+https://github.com/fr4nk3nst1ner/devsalary)"

	maxErrorBody = 512
)

// StatusError is returned when an API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// CreateProxyHTTPClient creates an HTTP client routed through proxyURL.
// An empty proxyURL yields a direct client.
func CreateProxyHTTPClient(proxyURL string, timeout time.Duration) (*http.Client, error) {
	if proxyURL == "" {
		return CreateHTTPClient(timeout), nil
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url %q: %w", proxyURL, err)
	}

	httpClient := CreateHTTPClient(timeout)
	httpClient.Transport.(*http.Transport).Proxy = http.ProxyURL(proxy)
	return httpClient, nil
}

// CreateHTTPClient creates a standard HTTP client
func CreateHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// DefaultHeaders returns the headers sent with every API request
func DefaultHeaders() http.Header {
	headers := http.Header{}
	headers.Set("User-Agent", UserAgent)
	headers.Set("HH-User-Agent", UserAgent)
	headers.Set("Accept", "application/json")
	headers.Set("Accept-Encoding", "gzip")
	return headers
}

// GetJSON issues a GET to rawURL with the default headers plus extra and
// decodes the JSON response into out. Any non-2xx status is an error.
func GetJSON(ctx context.Context, httpClient *http.Client, rawURL string, extra http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	for key, values := range DefaultHeaders() {
		req.Header[key] = values
	}
	for key, values := range extra {
		req.Header[key] = values
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := ReadResponseBody(resp)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, URL: rawURL, Body: truncate(string(body), maxErrorBody)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", rawURL, err)
	}
	return nil
}

// ReadResponseBody reads the response body, handling gzip compression if necessary
func ReadResponseBody(resp *http.Response) ([]byte, error) {
	var reader io.ReadCloser
	var err error

	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
	default:
		reader = resp.Body
	}

	return io.ReadAll(reader)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
