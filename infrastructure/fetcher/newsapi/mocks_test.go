package newsapi

import (
	"context"
	"io"
	"strings"

	"headlines-app-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	lastURL string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.lastURL = url
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}
