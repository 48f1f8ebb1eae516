package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses, so client
// implementations can provide their own response types.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header, or an empty
	// string if the header is not present. Names are case-insensitive.
	Header(key string) string
}
