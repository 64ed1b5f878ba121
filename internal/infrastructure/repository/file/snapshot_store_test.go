package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSnapshotStore_WriteReplacesAtomically(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewSnapshotStore(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, ok, err := store.Read(ctx, "footballAppData"); err != nil || ok {
		t.Fatalf("expected missing slot, ok=%v err=%v", ok, err)
	}

	if err := store.Write(ctx, "footballAppData", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := store.Write(ctx, "footballAppData", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, ok, err := store.Read(ctx, "footballAppData")
	if err != nil || !ok {
		t.Fatalf("read: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"v":2}` {
		t.Fatalf("unexpected payload %s", got)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "footballAppData.json" {
		t.Fatalf("expected only the snapshot file to remain, got %v", entries)
	}
}

func TestNewSnapshotStore_RequiresDir(t *testing.T) {
	if _, err := NewSnapshotStore("  "); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}
