package index

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingCache(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "search_index.json"))
	if !errors.Is(err, ErrNoIndex) {
		t.Fatalf("expected ErrNoIndex, got %v", err)
	}
}

func TestLoad_CorruptCacheIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search_index.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for corrupt cache")
	}
}

func TestWriteLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "search_index.json")
	idx := Build(seedStore(t))

	if err := Write(path, idx); err != nil {
		t.Fatalf("Write: %v", err)
	}
	// No temp or backup leftovers after a clean install.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the index file, found %d entries", len(entries))
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Modules) != len(idx.Modules) || len(loaded.Components) != len(idx.Components) {
		t.Fatalf("round-trip lost entries")
	}
}

func TestWrite_ReplacesPreviousCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search_index.json")
	s := seedStore(t)

	if err := Write(path, Build(s)); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("payments"); err != nil {
		t.Fatal(err)
	}
	if err := Write(path, Build(s)); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := loaded.Modules["payments"]; ok {
		t.Fatalf("rebuild must fully replace the cache")
	}
}

func TestLoadOrBuild_BuildsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search_index.json")
	s := seedStore(t)

	idx, err := LoadOrBuild(path, s)
	if err != nil {
		t.Fatalf("LoadOrBuild: %v", err)
	}
	if len(idx.Modules) != 2 {
		t.Fatalf("expected built index, got %+v", idx)
	}
	// The lazy build persisted the cache.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("cache not persisted: %v", err)
	}
	// A second call serves the cache without error.
	if _, err := LoadOrBuild(path, s); err != nil {
		t.Fatalf("second LoadOrBuild: %v", err)
	}
}
