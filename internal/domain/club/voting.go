package club

import (
	"fmt"

	"github.com/riskibarqy/club-manager/internal/domain/fixture"
	"github.com/riskibarqy/club-manager/internal/domain/motm"
	"github.com/riskibarqy/club-manager/internal/domain/user"
)

// VoteCoachMotm sets the coach award, replacing any earlier coach vote.
func VoteCoachMotm(s State, fixtureID, playerID int64) (State, fixture.Fixture, error) {
	idx, err := votableFixture(s, fixtureID, playerID)
	if err != nil {
		return s, fixture.Fixture{}, err
	}

	next := s.Clone()
	pick := playerID
	next.Fixtures[idx].CoachMotm = &pick

	return next, next.Fixtures[idx].Clone(), nil
}

// VoteParentMotm records one vote per parent and recomputes the parent award.
func VoteParentMotm(s State, fixtureID, parentUserID, playerID int64) (State, fixture.Fixture, error) {
	voter, ok := user.FindByID(s.Users, parentUserID)
	if !ok {
		return s, fixture.Fixture{}, fmt.Errorf("%w: user=%d", ErrUserNotFound, parentUserID)
	}
	if voter.Role != user.RoleParent {
		return s, fixture.Fixture{}, fmt.Errorf("%w: user=%d role=%s", ErrVoterNotParent, parentUserID, voter.Role)
	}
	idx, err := votableFixture(s, fixtureID, playerID)
	if err != nil {
		return s, fixture.Fixture{}, err
	}

	next := s.Clone()
	target := &next.Fixtures[idx]
	target.ParentVotes[parentUserID] = playerID
	target.ParentMotm = motm.ParentWinner(target.ParentVotes)

	return next, target.Clone(), nil
}

func votableFixture(s State, fixtureID, playerID int64) (int, error) {
	current, idx, ok := fixture.FindByID(s.Fixtures, fixtureID)
	if !ok {
		return -1, fmt.Errorf("%w: fixture=%d", ErrFixtureNotFound, fixtureID)
	}
	if !current.IsCompleted() {
		return -1, fmt.Errorf("%w: fixture=%d status=%s", ErrFixtureNotCompleted, fixtureID, current.Status)
	}
	if _, ok := s.Player(playerID); !ok {
		return -1, fmt.Errorf("%w: player=%d", ErrPlayerNotFound, playerID)
	}
	return idx, nil
}
