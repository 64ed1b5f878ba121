package snapshot

import (
	"bytes"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/domain/fixture"
)

// DefaultKey is the storage key the club blob has always lived under.
const DefaultKey = "footballAppData"

var ErrUnsupportedSchema = crerr.New("unsupported snapshot schema version")

// Encode serialises the aggregate to its persisted JSON form. Map keys are
// sorted so equal states always produce equal bytes.
func Encode(state club.State) ([]byte, error) {
	state = Normalize(state)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigStd.NewEncoder(buf).Encode(state); err != nil {
		return nil, crerr.Wrap(err, "encode club snapshot")
	}

	out := make([]byte, 0, buf.Len())
	out = append(out, bytes.TrimRight(buf.B, "\n")...)
	return out, nil
}

// Decode parses a persisted blob. Blobs written before schemaVersion existed
// are upgraded in place; newer versions are rejected.
func Decode(raw []byte) (club.State, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return club.State{}, crerr.New("decode club snapshot: empty payload")
	}

	var state club.State
	if err := sonic.ConfigStd.Unmarshal(raw, &state); err != nil {
		return club.State{}, crerr.Wrap(err, "decode club snapshot")
	}
	if state.SchemaVersion > club.SchemaVersion {
		return club.State{}, crerr.Wrapf(ErrUnsupportedSchema, "version=%d supported=%d", state.SchemaVersion, club.SchemaVersion)
	}

	return Normalize(state), nil
}

// Normalize returns a copy with empty collections in place of nil, canonical
// status and venue values, and id sequences covering every stored id. A live
// match whose fixture is no longer stored is dropped.
func Normalize(state club.State) club.State {
	state = state.Clone()
	state.SchemaVersion = club.SchemaVersion
	for i := range state.Fixtures {
		state.Fixtures[i] = normalizeFixture(state.Fixtures[i])
	}
	if state.LiveMatch != nil {
		if _, _, ok := fixture.FindByID(state.Fixtures, state.LiveMatch.ID); ok {
			live := normalizeFixture(*state.LiveMatch)
			state.LiveMatch = &live
		} else {
			state.LiveMatch = nil
		}
	}
	state.Sequences = state.DeriveSequences()
	return state
}

func normalizeFixture(f fixture.Fixture) fixture.Fixture {
	f.Status = fixture.NormalizeStatus(f.Status)
	if venue, ok := fixture.NormalizeVenue(f.Venue); ok {
		f.Venue = venue
	}
	return f
}
