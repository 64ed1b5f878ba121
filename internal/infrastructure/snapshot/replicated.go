package snapshot

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
)

// NamedSlot labels a slot for error messages and logs.
type NamedSlot struct {
	Name string
	Slot Slot
}

// Replicated writes every payload to all slots concurrently and reads from
// the first one. A write succeeds only when every slot accepted it.
type Replicated struct {
	slots []NamedSlot
}

var _ Slot = (*Replicated)(nil)

func NewReplicated(slots ...NamedSlot) (*Replicated, error) {
	if len(slots) == 0 {
		return nil, crerr.New("replicated snapshot store needs at least one slot")
	}
	return &Replicated{slots: append([]NamedSlot(nil), slots...)}, nil
}

func (r *Replicated) Primary() NamedSlot {
	return r.slots[0]
}

func (r *Replicated) Read(ctx context.Context, key string) ([]byte, bool, error) {
	primary := r.Primary()
	raw, ok, err := primary.Slot.Read(ctx, key)
	if err != nil {
		return nil, false, crerr.Wrapf(err, "read from %s", primary.Name)
	}
	return raw, ok, nil
}

func (r *Replicated) Write(ctx context.Context, key string, payload []byte) error {
	if len(r.slots) == 1 {
		return r.write(ctx, r.slots[0], key, payload)
	}

	p := pool.New().WithErrors().WithContext(ctx)
	for _, slot := range r.slots {
		p.Go(func(ctx context.Context) error {
			return r.write(ctx, slot, key, payload)
		})
	}
	return p.Wait()
}

func (r *Replicated) write(ctx context.Context, slot NamedSlot, key string, payload []byte) error {
	if err := slot.Slot.Write(ctx, key, payload); err != nil {
		return crerr.Wrapf(err, "write to %s", slot.Name)
	}
	return nil
}
