package club

import (
	"github.com/riskibarqy/club-manager/internal/domain/fixture"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/user"
)

// SchemaVersion is written into every persisted snapshot.
const SchemaVersion = 1

// Sequences holds the last id handed out per entity so ids are never reused.
type Sequences struct {
	User    int64 `json:"user"`
	Player  int64 `json:"player"`
	Fixture int64 `json:"fixture"`
}

// State is the single root aggregate of the club. Reducers in this package
// never modify the State they receive; they return a new one.
type State struct {
	SchemaVersion int               `json:"schemaVersion"`
	Users         []user.User       `json:"users"`
	Players       []player.Player   `json:"players"`
	Fixtures      []fixture.Fixture `json:"fixtures"`
	LiveMatch     *fixture.Fixture  `json:"liveMatch"`
	Sequences     Sequences         `json:"sequences"`
}

// NewState builds an aggregate from seed records, deriving id sequences.
func NewState(users []user.User, players []player.Player, fixtures []fixture.Fixture) State {
	s := State{
		SchemaVersion: SchemaVersion,
		Users:         append([]user.User{}, users...),
		Players:       append([]player.Player{}, players...),
		Fixtures:      make([]fixture.Fixture, 0, len(fixtures)),
	}
	for _, f := range fixtures {
		s.Fixtures = append(s.Fixtures, f.Clone())
	}
	s.Sequences = s.DeriveSequences()
	return s
}

func (s State) Clone() State {
	out := State{
		SchemaVersion: s.SchemaVersion,
		Users:         make([]user.User, len(s.Users)),
		Players:       make([]player.Player, len(s.Players)),
		Fixtures:      make([]fixture.Fixture, len(s.Fixtures)),
		Sequences:     s.Sequences,
	}
	copy(out.Users, s.Users)
	copy(out.Players, s.Players)
	for i, f := range s.Fixtures {
		out.Fixtures[i] = f.Clone()
	}
	if s.LiveMatch != nil {
		live := s.LiveMatch.Clone()
		out.LiveMatch = &live
	}
	return out
}

// DeriveSequences returns sequences that are at least the highest id in use.
func (s State) DeriveSequences() Sequences {
	seq := s.Sequences
	for _, u := range s.Users {
		seq.User = max(seq.User, u.ID)
	}
	for _, p := range s.Players {
		seq.Player = max(seq.Player, p.ID)
	}
	for _, f := range s.Fixtures {
		seq.Fixture = max(seq.Fixture, f.ID)
	}
	if s.LiveMatch != nil {
		seq.Fixture = max(seq.Fixture, s.LiveMatch.ID)
	}
	return seq
}

// IsLive reports whether fixtureID is the fixture currently being played.
func (s State) IsLive(fixtureID int64) bool {
	return s.LiveMatch != nil && s.LiveMatch.ID == fixtureID
}

func (s State) Player(id int64) (player.Player, bool) {
	return player.FindByID(s.Players, id)
}

func (s State) Fixture(id int64) (fixture.Fixture, bool) {
	f, _, ok := fixture.FindByID(s.Fixtures, id)
	return f, ok
}

func (s State) PlayerName(id int64) string {
	return player.NameOf(s.Players, id)
}
