// ABOUTME: Cache entry manager owns the TTL'd article-list cache
// ABOUTME: Enforces a max entry count with an LFU/LRU hybrid eviction rank

package articlecache

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"headlines-app-api/core/envelope"
	coreerrors "headlines-app-api/core/errors"
	"headlines-app-api/core/interfaces"
)

// KeyPrefix namespaces cache entries in the key-value store
const KeyPrefix = "cache."

// entrySchemaVersion is the cache entry envelope shape this build writes
const entrySchemaVersion = 1

// ErrCacheMiss is the error returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Manager owns cache entry lifecycle over the key-value store.
// Construct with NewManager, then call Initialize before use.
type Manager struct {
	storage    interfaces.KeyValueStore
	logger     interfaces.Logger
	maxEntries int
	now        func() time.Time

	mu          sync.RWMutex
	entries     map[string]*Entry
	initialized bool

	sweeps sync.WaitGroup
}

// NewManager creates a cache entry manager holding at most maxEntries
// live entries
func NewManager(deps interfaces.Dependencies, maxEntries int) *Manager {
	return &Manager{
		storage:    deps.Storage,
		logger:     deps.Logger,
		maxEntries: maxEntries,
		now:        time.Now,
		entries:    make(map[string]*Entry),
	}
}

// Initialize loads persisted entries into the in-memory mirror.
// Corrupt entries are discarded and removed from storage.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys, err := m.storage.ListKeys(ctx, KeyPrefix)
	if err != nil {
		// Treat an unscannable store as an empty cache
		m.logger.Warn("Failed to list cache keys, starting empty", map[string]interface{}{
			"error": err.Error(),
		})
		m.initialized = true
		return nil
	}

	m.entries = make(map[string]*Entry, len(keys))
	for _, storageKey := range keys {
		cacheKey := strings.TrimPrefix(storageKey, KeyPrefix)

		entry, err := m.loadEntry(ctx, storageKey)
		if err != nil {
			m.logger.Warn("Discarding unreadable cache entry", map[string]interface{}{
				"key":   storageKey,
				"error": err.Error(),
			})
			_ = m.storage.RemoveKey(ctx, storageKey)
			continue
		}

		m.entries[cacheKey] = entry
	}

	m.initialized = true
	return nil
}

// Teardown waits for in-flight sweeps and drops the mirror
func (m *Manager) Teardown() {
	m.sweeps.Wait()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]*Entry)
	m.initialized = false
}

// loadEntry reads and decodes one entry from storage
func (m *Manager) loadEntry(ctx context.Context, storageKey string) (*Entry, error) {
	raw, err := m.storage.GetString(ctx, storageKey)
	if err != nil {
		return nil, &coreerrors.StorageReadError{Key: storageKey, Err: err}
	}

	env, err := envelope.Open(storageKey, raw)
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := env.Decode(storageKey, &entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

// Set wraps payload in a fresh entry, persists it, and kicks off a
// background eviction sweep. Setting an existing key refreshes CreatedAt
// and resets the access stats.
func (m *Manager) Set(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration) error {
	if ttl < 0 {
		return errors.New("ttl cannot be negative")
	}

	now := m.now()
	entry := &Entry{
		Payload:        payload,
		CreatedAt:      now.UnixMilli(),
		TTLMillis:      ttl.Milliseconds(),
		LastAccessedAt: now.UnixMilli(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.persistEntry(ctx, key, entry); err != nil {
		return err
	}
	m.entries[key] = entry

	m.sweeps.Add(1)
	go func() {
		defer m.sweeps.Done()
		m.sweep(context.Background(), key)
	}()

	return nil
}

// Get returns the payload for key if a live entry exists.
// An expired entry is purged and reported as a miss. Access stats are
// updated best-effort; a failed stat write never fails the read.
func (m *Manager) Get(ctx context.Context, key string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}

	now := m.now()
	if entry.Expired(now) {
		delete(m.entries, key)
		if err := m.storage.RemoveKey(ctx, KeyPrefix+key); err != nil {
			m.logger.Warn("Failed to purge expired cache entry", map[string]interface{}{
				"key":   KeyPrefix + key,
				"error": err.Error(),
			})
		}
		return nil, ErrCacheMiss
	}

	entry.AccessCount++
	entry.LastAccessedAt = now.UnixMilli()
	if err := m.persistEntry(ctx, key, entry); err != nil {
		m.logger.Warn("Failed to persist cache access stats", map[string]interface{}{
			"key":   KeyPrefix + key,
			"error": err.Error(),
		})
	}

	return entry.Payload, nil
}

// Peek returns the payload for key without purging or touching stats,
// reporting whether the entry is past its TTL. The reconciliation layer
// uses it to serve stale data when a refresh fails.
func (m *Manager) Peek(key string) (payload json.RawMessage, createdAt time.Time, stale bool, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, found := m.entries[key]
	if !found {
		return nil, time.Time{}, false, false
	}

	return entry.Payload, entry.CreatedTime(), entry.Expired(m.now()), true
}

// Keys returns the cache keys currently held, expired entries included
func (m *Manager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries currently held
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Remove deletes one entry
func (m *Manager) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	if err := m.storage.RemoveKey(ctx, KeyPrefix+key); err != nil {
		return &coreerrors.StorageWriteError{Key: KeyPrefix + key, Err: err}
	}
	return nil
}

// Clear deletes every entry
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.entries {
		if err := m.storage.RemoveKey(ctx, KeyPrefix+key); err != nil {
			return &coreerrors.StorageWriteError{Key: KeyPrefix + key, Err: err}
		}
		delete(m.entries, key)
	}
	return nil
}

// persistEntry writes one entry to storage. Callers hold the write lock.
func (m *Manager) persistEntry(ctx context.Context, key string, entry *Entry) error {
	sealed, err := envelope.Seal(entrySchemaVersion, entry, m.now())
	if err != nil {
		return err
	}

	if err := m.storage.SetString(ctx, KeyPrefix+key, sealed); err != nil {
		return &coreerrors.StorageWriteError{Key: KeyPrefix + key, Err: err}
	}

	return nil
}

// sweep purges expired entries, then evicts lowest-ranked entries until
// the live count is within maxEntries. The entry that triggered the
// sweep (just written, zero accesses) is not an eviction candidate.
func (m *Manager) sweep(ctx context.Context, justSet string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, entry := range m.entries {
		if entry.Expired(now) {
			delete(m.entries, key)
			if err := m.storage.RemoveKey(ctx, KeyPrefix+key); err != nil {
				m.logger.Warn("Failed to purge expired cache entry", map[string]interface{}{
					"key":   KeyPrefix + key,
					"error": err.Error(),
				})
			}
		}
	}

	if m.maxEntries <= 0 || len(m.entries) <= m.maxEntries {
		return
	}

	type ranked struct {
		key   string
		entry *Entry
	}
	candidates := make([]ranked, 0, len(m.entries))
	for key, entry := range m.entries {
		if key == justSet {
			continue
		}
		candidates = append(candidates, ranked{key, entry})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].entry.rankBefore(candidates[j].entry)
	})

	for _, victim := range candidates[:len(m.entries)-m.maxEntries] {
		delete(m.entries, victim.key)
		if err := m.storage.RemoveKey(ctx, KeyPrefix+victim.key); err != nil {
			m.logger.Warn("Failed to evict cache entry", map[string]interface{}{
				"key":   KeyPrefix + victim.key,
				"error": err.Error(),
			})
		}
	}
}
