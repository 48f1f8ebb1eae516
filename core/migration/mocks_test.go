package migration

import (
	"context"
	"errors"
	"strings"
	"sync"

	"headlines-app-api/core/interfaces"
)

// fakeStorage is a map-backed KeyValueStore with failure injection
type fakeStorage struct {
	mu     sync.Mutex
	data   map[string]string
	sets   []string
	failOn map[string]error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		data:   make(map[string]string),
		failOn: make(map[string]error),
	}
}

func (s *fakeStorage) GetString(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failOn["get:"+key]; ok {
		return "", err
	}
	value, ok := s.data[key]
	if !ok {
		return "", interfaces.ErrKeyNotFound
	}
	return value, nil
}

func (s *fakeStorage) SetString(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failOn["set:"+key]; ok {
		return err
	}
	s.data[key] = value
	s.sets = append(s.sets, key)
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

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

var errInjected = errors.New("injected failure")
