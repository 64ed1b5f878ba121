package snapshot

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/club-manager/internal/domain/club"
)

// Slot is a raw key/value backend holding encoded snapshots.
type Slot interface {
	Read(ctx context.Context, key string) ([]byte, bool, error)
	Write(ctx context.Context, key string, payload []byte) error
}

// Repository stores the club aggregate as one encoded blob under key.
type Repository struct {
	slot Slot
	key  string
}

var _ club.Repository = (*Repository)(nil)

func NewRepository(slot Slot, key string) *Repository {
	key = strings.TrimSpace(key)
	if key == "" {
		key = DefaultKey
	}
	return &Repository{slot: slot, key: key}
}

func (r *Repository) Key() string {
	return r.key
}

func (r *Repository) Load(ctx context.Context) (club.State, bool, error) {
	raw, ok, err := r.slot.Read(ctx, r.key)
	if err != nil {
		return club.State{}, false, crerr.Wrapf(err, "read snapshot key=%s", r.key)
	}
	if !ok {
		return club.State{}, false, nil
	}

	state, err := Decode(raw)
	if err != nil {
		return club.State{}, false, crerr.Wrapf(err, "snapshot key=%s", r.key)
	}
	return state, true, nil
}

func (r *Repository) Save(ctx context.Context, state club.State) error {
	raw, err := Encode(state)
	if err != nil {
		return err
	}
	if err := r.slot.Write(ctx, r.key, raw); err != nil {
		return crerr.Wrapf(err, "write snapshot key=%s", r.key)
	}
	return nil
}
