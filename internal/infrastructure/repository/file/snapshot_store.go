package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"
)

// SnapshotStore keeps one <key>.json file per slot inside dir. Writes go to
// a temp file that is renamed over the target, so readers never observe a
// partial payload.
type SnapshotStore struct {
	dir string
	mu  sync.Mutex
}

func NewSnapshotStore(dir string) (*SnapshotStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, crerr.New("snapshot directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, crerr.Wrapf(err, "create snapshot directory %s", dir)
	}
	return &SnapshotStore{dir: dir}, nil
}

func (s *SnapshotStore) Path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key)+".json")
}

func (s *SnapshotStore) Read(_ context.Context, key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, crerr.Wrapf(err, "read snapshot file key=%s", key)
	}
	return raw, true, nil
}

func (s *SnapshotStore) Write(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, filepath.Base(key)+".*.tmp")
	if err != nil {
		return crerr.Wrapf(err, "create temp snapshot key=%s", key)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		cleanup()
		return crerr.Wrapf(err, "write temp snapshot key=%s", key)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return crerr.Wrapf(err, "sync temp snapshot key=%s", key)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return crerr.Wrapf(err, "close temp snapshot key=%s", key)
	}
	if err := os.Rename(tmpName, s.Path(key)); err != nil {
		cleanup()
		return crerr.Wrapf(err, "replace snapshot key=%s", key)
	}
	return nil
}
