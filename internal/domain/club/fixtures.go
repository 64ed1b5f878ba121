package club

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/club-manager/internal/domain/fixture"
)

// AddFixture schedules an upcoming fixture with no score, scorers or votes.
func AddFixture(s State, in fixture.NewFixture) (State, fixture.Fixture, error) {
	if err := in.Validate(); err != nil {
		return s, fixture.Fixture{}, err
	}

	venue, _ := fixture.NormalizeVenue(in.Venue)
	next := s.Clone()
	next.Sequences.Fixture++
	item := fixture.Fixture{
		ID:          next.Sequences.Fixture,
		Opponent:    strings.TrimSpace(in.Opponent),
		Date:        strings.TrimSpace(in.Date),
		Time:        strings.TrimSpace(in.Time),
		Venue:       venue,
		Scorers:     []int64{},
		Status:      fixture.StatusUpcoming,
		ParentVotes: map[int64]int64{},
	}
	next.Fixtures = append(next.Fixtures, item)

	return next, item.Clone(), nil
}

// UpdateFixture edits schedule fields. A live fixture cannot be edited.
func UpdateFixture(s State, id int64, u fixture.Update) (State, fixture.Fixture, error) {
	if err := u.Validate(); err != nil {
		return s, fixture.Fixture{}, err
	}
	_, idx, ok := fixture.FindByID(s.Fixtures, id)
	if !ok {
		return s, fixture.Fixture{}, fmt.Errorf("%w: fixture=%d", ErrFixtureNotFound, id)
	}
	if s.IsLive(id) {
		return s, fixture.Fixture{}, fmt.Errorf("%w: fixture=%d", ErrFixtureLive, id)
	}

	next := s.Clone()
	next.Fixtures[idx] = u.Apply(next.Fixtures[idx])

	return next, next.Fixtures[idx].Clone(), nil
}

// DeleteFixture removes a fixture unless it is the live match.
func DeleteFixture(s State, id int64) (State, error) {
	if _, ok := s.Fixture(id); !ok {
		return s, fmt.Errorf("%w: fixture=%d", ErrFixtureNotFound, id)
	}
	if s.IsLive(id) {
		return s, fmt.Errorf("%w: fixture=%d", ErrFixtureLive, id)
	}

	next := s.Clone()
	fixtures := make([]fixture.Fixture, 0, len(next.Fixtures))
	for _, f := range next.Fixtures {
		if f.ID == id {
			continue
		}
		fixtures = append(fixtures, f)
	}
	next.Fixtures = fixtures

	return next, nil
}

// StartLiveMatch opens the live working copy of an upcoming fixture, with
// unset scores defaulted to zero.
func StartLiveMatch(s State, id int64) (State, fixture.Fixture, error) {
	if s.LiveMatch != nil {
		return s, fixture.Fixture{}, fmt.Errorf("%w: live fixture=%d", ErrLiveMatchActive, s.LiveMatch.ID)
	}
	current, idx, ok := fixture.FindByID(s.Fixtures, id)
	if !ok {
		return s, fixture.Fixture{}, fmt.Errorf("%w: fixture=%d", ErrFixtureNotFound, id)
	}
	if !current.IsUpcoming() {
		return s, fixture.Fixture{}, fmt.Errorf("%w: fixture=%d status=%s", ErrFixtureNotUpcoming, id, current.Status)
	}

	next := s.Clone()
	live := next.Fixtures[idx].Clone()
	if live.HomeScore == nil {
		live.HomeScore = intPtr(0)
	}
	if live.AwayScore == nil {
		live.AwayScore = intPtr(0)
	}
	next.LiveMatch = &live
	next.Fixtures[idx] = live.Clone()

	return next, live.Clone(), nil
}

func intPtr(v int) *int {
	return &v
}
