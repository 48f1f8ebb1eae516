// ABOUTME: Bookmark store owns the persisted set of saved-article ids
// ABOUTME: Mutations write through to storage; reads hit the in-memory mirror

package bookmarks

import (
	"context"
	"sync"
	"time"

	"headlines-app-api/core/envelope"
	coreerrors "headlines-app-api/core/errors"
	"headlines-app-api/core/interfaces"
)

const (
	// schemaVersion is the bookmark blob shape this build writes
	schemaVersion = 2

	// storageKey is where the bookmark envelope lives
	storageKey = "bookmarks.v2"

	// backupKey holds a copy of the last successful save
	backupKey = storageKey + ".bak"
)

// Store is the authoritative set of bookmarked article ids.
// Construct with NewStore, then call Initialize before use.
type Store struct {
	storage interfaces.KeyValueStore
	logger  interfaces.Logger
	now     func() time.Time

	mu          sync.RWMutex
	ids         []string
	index       map[string]bool
	initialized bool
}

// NewStore creates a bookmark store over the given dependencies
func NewStore(deps interfaces.Dependencies) *Store {
	return &Store{
		storage: deps.Storage,
		logger:  deps.Logger,
		now:     time.Now,
		index:   make(map[string]bool),
	}
}

// Initialize loads the persisted set into the in-memory mirror.
// A corrupt or unreadable blob falls back to the backup copy, and failing
// that to an empty set; Initialize never fails the caller for bad data.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load(ctx, storageKey)
	if err != nil {
		s.logger.Warn("Bookmark blob unreadable, trying backup", map[string]interface{}{
			"key":   storageKey,
			"error": err.Error(),
		})

		ids, err = s.load(ctx, backupKey)
		if err != nil {
			s.logger.Warn("Bookmark backup unreadable, starting empty", map[string]interface{}{
				"key":   backupKey,
				"error": err.Error(),
			})
			ids = nil
		}
	}

	s.ids = ids
	s.index = make(map[string]bool, len(ids))
	for _, id := range ids {
		s.index[id] = true
	}
	s.initialized = true

	return nil
}

// Teardown drops the in-memory mirror. The persisted set is untouched.
func (s *Store) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
	s.index = make(map[string]bool)
	s.initialized = false
}

// load reads and decodes one bookmark envelope; absence reads as empty
func (s *Store) load(ctx context.Context, key string) ([]string, error) {
	raw, err := s.storage.GetString(ctx, key)
	if err == interfaces.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, &coreerrors.StorageReadError{Key: key, Err: err}
	}

	env, err := envelope.Open(key, raw)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := env.Decode(key, &ids); err != nil {
		return nil, err
	}

	return ids, nil
}

// Add inserts id if absent and persists the updated set.
// Returns false without touching storage when id is already present.
// A failed persistence write rolls the insertion back.
func (s *Store) Add(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index[id] {
		return false, nil
	}

	s.ids = append(s.ids, id)
	s.index[id] = true

	if err := s.persist(ctx); err != nil {
		s.ids = s.ids[:len(s.ids)-1]
		delete(s.index, id)
		return false, err
	}

	return true, nil
}

// Remove deletes id if present and persists the updated set.
// Returns false when id was not bookmarked.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.index[id] {
		return false, nil
	}

	prev := s.ids
	next := make([]string, 0, len(prev)-1)
	for _, existing := range prev {
		if existing != id {
			next = append(next, existing)
		}
	}

	s.ids = next
	delete(s.index, id)

	if err := s.persist(ctx); err != nil {
		s.ids = prev
		s.index[id] = true
		return false, err
	}

	return true, nil
}

// Clear empties the set and persists
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevIDs, prevIndex := s.ids, s.index
	s.ids = nil
	s.index = make(map[string]bool)

	if err := s.persist(ctx); err != nil {
		s.ids, s.index = prevIDs, prevIndex
		return err
	}

	return nil
}

// Contains reports whether id is bookmarked. Served from the mirror, no I/O.
func (s *Store) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index[id]
}

// All returns a snapshot of the bookmarked ids in insertion order
func (s *Store) All() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]string, len(s.ids))
	copy(snapshot, s.ids)
	return snapshot
}

// Len returns the number of bookmarked ids
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// persist writes the current set, then refreshes the backup copy.
// Callers hold the write lock, so storage writes are issued sequentially.
func (s *Store) persist(ctx context.Context) error {
	ids := s.ids
	if ids == nil {
		ids = []string{}
	}

	sealed, err := envelope.Seal(schemaVersion, ids, s.now())
	if err != nil {
		return err
	}

	if err := s.storage.SetString(ctx, storageKey, sealed); err != nil {
		return &coreerrors.StorageWriteError{Key: storageKey, Err: err}
	}

	// Backup write is best-effort; the primary save already succeeded
	if err := s.storage.SetString(ctx, backupKey, sealed); err != nil {
		s.logger.Warn("Failed to refresh bookmark backup", map[string]interface{}{
			"key":   backupKey,
			"error": err.Error(),
		})
	}

	return nil
}
