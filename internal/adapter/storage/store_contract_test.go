package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/rl1809/tableside/internal/port"
)

// runStoreContract checks behaviour every KeyValueStore must share. Keys are
// prefixed so live backends can be cleaned up afterwards.
func runStoreContract(t *testing.T, store port.KeyValueStore, prefix string) {
	ctx := context.Background()
	key := prefix + "contract"

	store.Delete(ctx, key)
	defer store.Delete(ctx, key)

	// Missing key
	_, ok, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Fatal("expected missing key")
	}

	// Set then get
	if err := store.Set(ctx, key, `[{"id":"pizza-1","quantity":2}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if v != `[{"id":"pizza-1","quantity":2}]` {
		t.Errorf("unexpected value %q", v)
	}

	// Overwrite
	if err := store.Set(ctx, key, "Table 5"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = store.Get(ctx, key)
	if v != "Table 5" {
		t.Errorf("expected overwritten value, got %q", v)
	}

	// Delete twice
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if _, ok, _ := store.Get(ctx, key); ok {
		t.Error("expected key to be gone")
	}
}

func runStoreConcurrentWrites(t *testing.T, store port.KeyValueStore, prefix string) {
	ctx := context.Background()
	key := prefix + "concurrent"
	defer store.Delete(ctx, key)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Set(ctx, key, "same"); err != nil {
				t.Errorf("set: %v", err)
			}
		}()
	}
	wg.Wait()

	v, ok, err := store.Get(ctx, key)
	if err != nil || !ok || v != "same" {
		t.Errorf("expected last write to win, got %q ok=%v err=%v", v, ok, err)
	}
}
