package snapshot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

type fakeSlot struct {
	mu       sync.Mutex
	data     map[string][]byte
	writeErr error
}

func newFakeSlot() *fakeSlot {
	return &fakeSlot{data: make(map[string][]byte)}
}

func (f *fakeSlot) Read(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.data[key]
	return raw, ok, nil
}

func (f *fakeSlot) Write(_ context.Context, key string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.data[key] = append([]byte(nil), payload...)
	return nil
}

func TestReplicated_WritesEverySlotReadsPrimary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	primary, secondary := newFakeSlot(), newFakeSlot()
	secondary.data["k"] = []byte("stale")

	r, err := NewReplicated(NamedSlot{Name: "file", Slot: primary}, NamedSlot{Name: "redis", Slot: secondary})
	if err != nil {
		t.Fatalf("new replicated: %v", err)
	}

	if _, ok, _ := r.Read(ctx, "k"); ok {
		t.Fatalf("expected read to ignore secondary slot")
	}
	if err := r.Write(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("write: %v", err)
	}
	for name, slot := range map[string]*fakeSlot{"primary": primary, "secondary": secondary} {
		if got := string(slot.data["k"]); got != "v1" {
			t.Fatalf("%s slot has %q", name, got)
		}
	}
}

func TestReplicated_WriteFailsWhenAnySlotFails(t *testing.T) {
	t.Parallel()

	broken := newFakeSlot()
	broken.writeErr = errors.New("redis down")

	r, err := NewReplicated(NamedSlot{Name: "memory", Slot: newFakeSlot()}, NamedSlot{Name: "redis", Slot: broken})
	if err != nil {
		t.Fatalf("new replicated: %v", err)
	}

	err = r.Write(context.Background(), "k", []byte("v"))
	if err == nil || !strings.Contains(err.Error(), "write to redis") {
		t.Fatalf("expected failing slot named in error, got %v", err)
	}
}

func TestNewReplicated_RequiresSlot(t *testing.T) {
	if _, err := NewReplicated(); err == nil {
		t.Fatalf("expected error without slots")
	}
}

func TestRepository_LoadSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	slot := newFakeSlot()
	repo := NewRepository(slot, "")

	if repo.Key() != DefaultKey {
		t.Fatalf("expected default key, got %q", repo.Key())
	}
	if _, ok, err := repo.Load(ctx); err != nil || ok {
		t.Fatalf("expected empty repository, ok=%v err=%v", ok, err)
	}

	state := sampleState()
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, ok, err := repo.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if len(loaded.Fixtures) != len(state.Fixtures) || loaded.LiveMatch == nil {
		t.Fatalf("unexpected loaded state %+v", loaded)
	}

	slot.data[DefaultKey] = []byte(`{"schemaVersion": 99}`)
	if _, _, err := repo.Load(ctx); err == nil {
		t.Fatalf("expected decode error for unsupported schema")
	}
}
