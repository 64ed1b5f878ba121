package redis

import (
	"context"
	"errors"
	"strings"

	crerr "github.com/cockroachdb/errors"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "club:snapshot:"

// SnapshotStore keeps each snapshot as a plain string value without expiry.
type SnapshotStore struct {
	rdb goredis.Cmdable
}

func NewSnapshotStore(rdb goredis.Cmdable) *SnapshotStore {
	return &SnapshotStore{rdb: rdb}
}

// NewClient builds a client from a redis:// or rediss:// URL and checks it
// answers PING.
func NewClient(ctx context.Context, rawURL string) (*goredis.Client, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, crerr.New("REDIS_URL is required for the redis snapshot store")
	}
	opts, err := goredis.ParseURL(rawURL)
	if err != nil {
		return nil, crerr.Wrap(err, "parse REDIS_URL")
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, crerr.Wrap(err, "redis ping")
	}
	return client, nil
}

func slotKey(key string) string {
	return keyPrefix + strings.TrimSpace(key)
}

func (s *SnapshotStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.rdb.Get(ctx, slotKey(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, crerr.Wrapf(err, "redis get key=%s", key)
	}
	return raw, true, nil
}

func (s *SnapshotStore) Write(ctx context.Context, key string, payload []byte) error {
	if err := s.rdb.Set(ctx, slotKey(key), payload, 0).Err(); err != nil {
		return crerr.Wrapf(err, "redis set key=%s", key)
	}
	return nil
}
