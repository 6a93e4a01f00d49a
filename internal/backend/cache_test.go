package backend

import (
	"path/filepath"
	"testing"
)

func TestCacheRecordAndLookup(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	defer cache.Close()

	hash := HashSource("module Main\n")

	fresh, err := cache.IsFresh(hash, "build/main.hir")
	if err != nil {
		t.Fatalf("IsFresh: %v", err)
	}
	if fresh {
		t.Errorf("empty cache must not report fresh")
	}

	if err := cache.Record(hash, "main.vt", "build/main.hir", "session-1"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	fresh, err = cache.IsFresh(hash, "build/main.hir")
	if err != nil {
		t.Fatalf("IsFresh: %v", err)
	}
	if !fresh {
		t.Errorf("recorded build must be fresh")
	}

	// A different source hash misses.
	fresh, err = cache.IsFresh(HashSource("module Other\n"), "build/main.hir")
	if err != nil {
		t.Fatalf("IsFresh: %v", err)
	}
	if fresh {
		t.Errorf("changed source must not be fresh")
	}
}

func TestCacheRecordOverwrites(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	defer cache.Close()

	hash := HashSource("module Main\n")
	if err := cache.Record(hash, "main.vt", "build/main.hir", "session-1"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := cache.Record(hash, "main.vt", "build/main.hir", "session-2"); err != nil {
		t.Fatalf("re-Record: %v", err)
	}
}

func TestHashSourceIsStable(t *testing.T) {
	a := HashSource("module Main\n")
	b := HashSource("module Main\n")
	if a != b {
		t.Errorf("same source must hash equal")
	}
	if a == HashSource("module Main") {
		t.Errorf("different sources must hash differently")
	}
	if len(a) != 64 {
		t.Errorf("expected a hex sha256, got %q", a)
	}
}
