package memory

import (
	"context"
	"sync"
)

// SnapshotStore keeps encoded snapshots in process memory. Contents are lost
// on restart.
type SnapshotStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{slots: make(map[string][]byte)}
}

func (s *SnapshotStore) Read(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (s *SnapshotStore) Write(_ context.Context, key string, payload []byte) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)

	s.mu.Lock()
	s.slots[key] = stored
	s.mu.Unlock()
	return nil
}
