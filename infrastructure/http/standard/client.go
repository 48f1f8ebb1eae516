// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Retries server errors with exponential backoff for resilient provider calls

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"headlines-app-api/core/interfaces"
)

const userAgent = "HeadlinesApp/1.0"

// Client implements the HTTPClient interface using the standard library
type Client struct {
	client     *http.Client
	maxRetries int
}

// NewClient creates an HTTP client with the specified timeout.
// Requests that fail with a transport error or a 5xx response are
// retried up to maxRetries times with exponential backoff.
func NewClient(timeout time.Duration, maxRetries int) *Client {
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		maxRetries: maxRetries,
	}
}

// Get performs an HTTP GET request with retries
func (c *Client) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms, ...
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			lastErr = err
			resp = nil
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
