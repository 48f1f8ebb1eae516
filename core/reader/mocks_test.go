package reader

import (
	"context"
	"errors"
	"strings"
	"sync"

	"headlines-app-api/core/articlecache"
	"headlines-app-api/core/bookmarks"
	"headlines-app-api/core/domain"
	"headlines-app-api/core/interfaces"
)

// fakeStorage is a map-backed KeyValueStore
type fakeStorage struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: make(map[string]string)}
}

func (s *fakeStorage) GetString(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	if !ok {
		return "", interfaces.ErrKeyNotFound
	}
	return value, nil
}

func (s *fakeStorage) SetString(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *fakeStorage) RemoveKey(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *fakeStorage) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// mockFetcher is a mock implementation of the ArticleFetcher interface
type mockFetcher struct {
	mu         sync.Mutex
	fetchFunc  func(ctx context.Context, params interfaces.FetchParams) ([]domain.Article, error)
	fetchCalls int
}

func (m *mockFetcher) FetchArticles(ctx context.Context, params interfaces.FetchParams) ([]domain.Article, error) {
	m.mu.Lock()
	m.fetchCalls++
	m.mu.Unlock()
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, params)
	}
	return nil, nil
}

func (m *mockFetcher) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchCalls
}

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

var errFetchDown = errors.New("provider unreachable")

// testHarness bundles an initialized service with its collaborators
type testHarness struct {
	service   *Service
	bookmarks *bookmarks.Store
	cache     *articlecache.Manager
	fetcher   *mockFetcher
	storage   *fakeStorage
}

func newHarness(opts Options) *testHarness {
	storage := newFakeStorage()
	deps := interfaces.Dependencies{Storage: storage, Logger: nopLogger{}}

	store := bookmarks.NewStore(deps)
	store.Initialize(context.Background())

	cache := articlecache.NewManager(deps, 50)
	cache.Initialize(context.Background())

	fetcher := &mockFetcher{}

	return &testHarness{
		service:   NewService(store, cache, fetcher, nopLogger{}, opts),
		bookmarks: store,
		cache:     cache,
		fetcher:   fetcher,
		storage:   storage,
	}
}

func article(urlPath, title string) domain.Article {
	u := "https://news.example.com/" + urlPath
	return domain.Article{
		ID:    domain.ArticleID(u),
		Title: title,
		URL:   u,
		Source: domain.Source{
			Name: "Example News",
		},
	}
}
