package club

import (
	"fmt"

	"github.com/riskibarqy/club-manager/internal/domain/fixture"
)

// SetScore writes one side of the live score. The fixture entry is kept in
// step with the live copy on every write.
func SetScore(s State, side string, value int) (State, fixture.Fixture, error) {
	normalized, ok := fixture.NormalizeSide(side)
	if !ok {
		return s, fixture.Fixture{}, fmt.Errorf("%w: side=%q", ErrInvalidSide, side)
	}
	if value < 0 {
		return s, fixture.Fixture{}, fmt.Errorf("%w: value=%d", ErrInvalidScore, value)
	}

	return mutateLive(s, func(live *fixture.Fixture) {
		score := value
		if normalized == fixture.SideHome {
			live.HomeScore = &score
			return
		}
		live.AwayScore = &score
	})
}

// AddScorer records one goal for playerID. The id is not checked against the
// roster and repeats are expected.
func AddScorer(s State, playerID int64) (State, fixture.Fixture, error) {
	return mutateLive(s, func(live *fixture.Fixture) {
		live.Scorers = append(live.Scorers, playerID)
	})
}

// EndLiveMatch completes the live fixture and clears the live slot. When the
// fixture is gone from the list the slot is still cleared so a new match can
// start.
func EndLiveMatch(s State) (State, fixture.Fixture, error) {
	if s.LiveMatch == nil {
		return s, fixture.Fixture{}, ErrNoLiveMatch
	}
	_, idx, ok := fixture.FindByID(s.Fixtures, s.LiveMatch.ID)

	next := s.Clone()
	final := next.LiveMatch.Clone()
	final.Status = fixture.StatusCompleted
	if ok {
		next.Fixtures[idx] = final
	}
	next.LiveMatch = nil

	return next, final.Clone(), nil
}

func mutateLive(s State, fn func(live *fixture.Fixture)) (State, fixture.Fixture, error) {
	if s.LiveMatch == nil {
		return s, fixture.Fixture{}, ErrNoLiveMatch
	}
	_, idx, ok := fixture.FindByID(s.Fixtures, s.LiveMatch.ID)
	if !ok {
		return s, fixture.Fixture{}, fmt.Errorf("%w: live fixture=%d", ErrFixtureNotFound, s.LiveMatch.ID)
	}

	next := s.Clone()
	fn(next.LiveMatch)
	next.Fixtures[idx] = next.LiveMatch.Clone()

	return next, next.LiveMatch.Clone(), nil
}
