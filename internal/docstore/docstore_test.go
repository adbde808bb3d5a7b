package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// roundTrip exercises the Store contract shared by every backend.
func roundTrip(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected absent for missing key, got ok=%v err=%v", ok, err)
	}

	doc := []byte(`[{"id":"a","date":"2025-06-15T12:30:45Z"}]`)
	if err := store.Set(ctx, "transactions", doc); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := store.Get(ctx, "transactions")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, doc) {
		t.Fatalf("round-trip mismatch: %s != %s", got, doc)
	}

	// Overwrite replaces the whole document.
	if err := store.Set(ctx, "transactions", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = store.Get(ctx, "transactions")
	if string(got) != `[]` {
		t.Fatalf("expected overwritten document, got %s", got)
	}

	if err := store.Set(ctx, "settings", []byte(`{"currency":"EUR"}`)); err != nil {
		t.Fatalf("set settings: %v", err)
	}
	if err := store.RemoveMany(ctx, []string{"transactions", "settings", "never-existed"}); err != nil {
		t.Fatalf("remove many: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "transactions"); ok {
		t.Fatalf("expected transactions removed")
	}
	if _, ok, _ := store.Get(ctx, "settings"); ok {
		t.Fatalf("expected settings removed")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	roundTrip(t, NewMemoryStore())
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	roundTrip(t, store)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	defer store.Close()
	roundTrip(t, store)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	doc := []byte(`{"k":1}`)
	if err := store.Set(ctx, "doc", doc); err != nil {
		t.Fatalf("set: %v", err)
	}
	doc[0] = 'X' // caller mutates its buffer after Set

	got, _, _ := store.Get(ctx, "doc")
	if string(got) != `{"k":1}` {
		t.Fatalf("store leaked caller's buffer: %s", got)
	}

	got[0] = 'Y' // caller mutates the returned buffer
	again, _, _ := store.Get(ctx, "doc")
	if string(again) != `{"k":1}` {
		t.Fatalf("store leaked its internal buffer: %s", again)
	}
}

func TestFileStoreWritesWholeFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}

	ctx := context.Background()
	if err := store.Set(ctx, "budgets", []byte(`[{"id":"b1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	// The document lands as <key>.json with no temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "budgets.json" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}

// Dates written through the JSON codec come back equal, down to the
// stored precision.
func TestDateFidelityThroughStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	type stamped struct {
		At time.Time `json:"at"`
	}
	in := []stamped{{At: time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)}}

	encoded, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := store.Set(ctx, "stamps", encoded); err != nil {
		t.Fatalf("set: %v", err)
	}

	raw, _, _ := store.Get(ctx, "stamps")
	var out []stamped
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out[0].At.Equal(in[0].At) {
		t.Fatalf("date mismatch: %v != %v", out[0].At, in[0].At)
	}
}
