package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "absent"); err != nil || ok {
		t.Errorf("Get absent = ok %v, err %v", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("payload"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get = ok %v, err %v", ok, err)
	}
	if string(data) != "payload" {
		t.Errorf("Get = %q, want payload", data)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("key survived delete")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("double delete: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("x"), time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("expired entry still served")
	}
}

func TestFileCacheGroupsEntriesByKind(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	keyer := NewDefaultKeyer()
	keys := map[string]string{
		"solve":  keyer.SolveKey("abc", SolveKeyOpts{Seed: 1}),
		"report": keyer.ReportKey("def"),
		"misc":   "project:a:" + keyer.SpecKey("ghi"),
	}
	for _, key := range keys {
		if err := c.Set(ctx, key, []byte("x"), 0); err != nil {
			t.Fatalf("Set %s: %v", key, err)
		}
	}
	for kind := range keys {
		entries, err := os.ReadDir(filepath.Join(dir, kind))
		if err != nil || len(entries) != 1 {
			t.Errorf("kind dir %s: entries %d, err %v", kind, len(entries), err)
		}
	}
}

func TestFileCacheDropsSupersededEntries(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	const key = "solve:stale"
	if err := c.Set(ctx, key, []byte("x"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Rewrite the entry under a future schema version.
	path := c.(*FileCache).path(key)
	data, _ := json.Marshal(fileEntry{Schema: entrySchema + 1, Payload: []byte("x")})
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok, _ := c.Get(ctx, key); ok {
		t.Error("entry with unknown schema served")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("superseded entry not removed")
	}
}

func TestNullCacheAlwaysMisses(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("x"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("null cache returned a hit")
	}
}

func TestKeyerDistinguishesOptions(t *testing.T) {
	k := NewDefaultKeyer()

	base := k.SolveKey("abc", SolveKeyOpts{Seed: 42, Iterations: 5000})
	if base != k.SolveKey("abc", SolveKeyOpts{Seed: 42, Iterations: 5000}) {
		t.Error("identical inputs produced different keys")
	}
	variants := []SolveKeyOpts{
		{Seed: 43, Iterations: 5000},
		{Seed: 42, Iterations: 6000},
		{Seed: 42, Iterations: 5000, Variations: 3},
		{Seed: 42, Iterations: 5000, WeightsHash: "w1"},
	}
	for _, v := range variants {
		if k.SolveKey("abc", v) == base {
			t.Errorf("opts %+v collide with base", v)
		}
	}
	if k.SolveKey("other", SolveKeyOpts{Seed: 42, Iterations: 5000}) == base {
		t.Error("different spec hashes collide")
	}
	if k.SpecKey("abc") == k.ReportKey("abc") {
		t.Error("key namespaces collide")
	}
}

func TestScopedKeyerPrefix(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "project:a:")

	got := scoped.SpecKey("abc")
	want := "project:a:" + inner.SpecKey("abc")
	if got != want {
		t.Errorf("SpecKey = %q, want %q", got, want)
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	t.Run("NonRetryableFailsFast", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			return errors.New("fatal")
		})
		if err == nil || calls != 1 {
			t.Errorf("calls = %d, err = %v; want 1 call and error", calls, err)
		}
	})

	t.Run("RetryableEventuallySucceeds", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			if calls < 2 {
				return Retryable(errors.New("transient"))
			}
			return nil
		})
		if err != nil || calls != 2 {
			t.Errorf("calls = %d, err = %v; want success on 2nd call", calls, err)
		}
	})
}

func TestHashStable(t *testing.T) {
	a := Hash([]byte("input"))
	b := Hash([]byte("input"))
	if a != b {
		t.Error("hash is not deterministic")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
	if Hash([]byte("other")) == a {
		t.Error("distinct inputs collide")
	}
}
