// ABOUTME: The migration steps shipped with this build
// ABOUTME: steps[i] upgrades schema version i to i+1

package migration

import (
	"context"
	"encoding/json"
	"time"

	"headlines-app-api/core/domain"
	"headlines-app-api/core/envelope"
	"headlines-app-api/core/interfaces"
)

const (
	legacyBookmarksKey = "bookmarks"
	bookmarksV1Key     = "bookmarks.v1"
	bookmarksV2Key     = "bookmarks.v2"
)

// DefaultSteps returns the migration chain for the current build.
// Target schema version is len(DefaultSteps()).
func DefaultSteps() []Step {
	return []Step{
		wrapLegacyBookmarks,
		canonicalizeBookmarkIDs,
	}
}

// wrapLegacyBookmarks (v0 -> v1) moves the pre-envelope bookmark blob, a
// bare JSON array of ids, into a SchemaEnvelope under the versioned key.
func wrapLegacyBookmarks(ctx context.Context, storage interfaces.KeyValueStore) error {
	raw, err := storage.GetString(ctx, legacyBookmarksKey)
	if err == interfaces.ErrKeyNotFound {
		// Fresh install, or the step already ran before a crash
		return nil
	}
	if err != nil {
		return err
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return err
	}

	sealed, err := envelope.Seal(1, ids, time.Now())
	if err != nil {
		return err
	}

	if err := storage.SetString(ctx, bookmarksV1Key, sealed); err != nil {
		return err
	}

	return storage.RemoveKey(ctx, legacyBookmarksKey)
}

// canonicalizeBookmarkIDs (v1 -> v2) rewrites bookmark ids saved as raw
// article URLs into URL-canonical ids, dropping duplicates that collapse
// to the same id.
func canonicalizeBookmarkIDs(ctx context.Context, storage interfaces.KeyValueStore) error {
	raw, err := storage.GetString(ctx, bookmarksV1Key)
	if err == interfaces.ErrKeyNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	env, err := envelope.Open(bookmarksV1Key, raw)
	if err != nil {
		return err
	}

	var urls []string
	if err := env.Decode(bookmarksV1Key, &urls); err != nil {
		return err
	}

	seen := make(map[string]bool, len(urls))
	ids := make([]string, 0, len(urls))
	for _, u := range urls {
		id := domain.ArticleID(u)
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	sealed, err := envelope.Seal(2, ids, time.Now())
	if err != nil {
		return err
	}

	if err := storage.SetString(ctx, bookmarksV2Key, sealed); err != nil {
		return err
	}

	return storage.RemoveKey(ctx, bookmarksV1Key)
}
