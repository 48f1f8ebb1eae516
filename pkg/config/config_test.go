package config

import (
	"testing"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()

	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("default port = %s, want 8000", cfg.Server.Port)
	}

	if cfg.Storage.Type != "sqlite" {
		t.Errorf("default storage type = %s, want sqlite", cfg.Storage.Type)
	}

	if cfg.Cache.TTLSeconds != 900 {
		t.Errorf("default cache TTL = %d, want 900", cfg.Cache.TTLSeconds)
	}

	if cfg.Fetcher.Provider != "newsapi" {
		t.Errorf("default provider = %s, want newsapi", cfg.Fetcher.Provider)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_TYPE", "memory")
	t.Setenv("CACHE_MAX_ENTRIES", "5")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("port = %s, want 9000", cfg.Server.Port)
	}

	if cfg.Storage.Type != "memory" {
		t.Errorf("storage type = %s, want memory", cfg.Storage.Type)
	}

	if cfg.Cache.MaxEntries != 5 {
		t.Errorf("max entries = %d, want 5", cfg.Cache.MaxEntries)
	}
}

func TestLoadFromEnv_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "not-a-number")

	cfg, _ := LoadFromEnv()

	if cfg.Cache.TTLSeconds != 900 {
		t.Errorf("invalid int should fall back to default, got %d", cfg.Cache.TTLSeconds)
	}
}

func TestParseFeedMap(t *testing.T) {
	feeds := parseFeedMap("tech=https://a.example/feed, science=https://b.example/feed")

	if len(feeds) != 2 {
		t.Fatalf("parsed %d feeds, want 2", len(feeds))
	}

	if feeds["tech"] != "https://a.example/feed" {
		t.Errorf("tech feed = %s", feeds["tech"])
	}

	if feeds["science"] != "https://b.example/feed" {
		t.Errorf("science feed = %s", feeds["science"])
	}
}

func TestParseFeedMap_SkipsMalformedPairs(t *testing.T) {
	feeds := parseFeedMap("tech=https://a.example/feed,broken,=nourl,nokey=")

	if len(feeds) != 1 {
		t.Errorf("parsed %d feeds, want 1", len(feeds))
	}
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	cfg, _ := LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestValidate_UnknownStorageType(t *testing.T) {
	cfg, _ := LoadFromEnv()
	cfg.Storage.Type = "cassandra"

	if err := cfg.Validate(); err == nil {
		t.Error("unknown storage type should fail validation")
	}
}

func TestValidate_RSSProviderNeedsFeeds(t *testing.T) {
	cfg, _ := LoadFromEnv()
	cfg.Fetcher.Provider = "rss"
	cfg.Fetcher.RSSFeeds = nil

	if err := cfg.Validate(); err == nil {
		t.Error("rss provider without feeds should fail validation")
	}
}

func TestValidate_MaxEntriesBound(t *testing.T) {
	cfg, _ := LoadFromEnv()
	cfg.Cache.MaxEntries = 0

	if err := cfg.Validate(); err == nil {
		t.Error("zero max entries should fail validation")
	}
}
