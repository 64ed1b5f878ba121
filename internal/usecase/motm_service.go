package usecase

import (
	"context"

	"github.com/riskibarqy/club-manager/internal/domain/access"
	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/domain/fixture"
	"github.com/riskibarqy/club-manager/internal/domain/motm"
	"github.com/riskibarqy/club-manager/internal/domain/user"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

type MotmService struct {
	store  *ClubStore
	policy access.Policy
	logger *logging.Logger
}

func NewMotmService(store *ClubStore, policy access.Policy, logger *logging.Logger) *MotmService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MotmService{store: store, policy: policy, logger: logger}
}

// VoteCoach records the coach award for a completed fixture, replacing any
// earlier pick.
func (s *MotmService) VoteCoach(ctx context.Context, actor user.Principal, fixtureID, playerID int64) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MotmService.VoteCoach")
	defer span.End()

	if err := authorize(s.policy, actor, access.OpVoteCoachMotm); err != nil {
		return fixture.Fixture{}, err
	}

	updated, err := mutate(ctx, s.store, "vote_coach_motm", func(state club.State) (club.State, fixture.Fixture, error) {
		return club.VoteCoachMotm(state, fixtureID, playerID)
	})
	if err != nil {
		return updated, err
	}

	s.logger.InfoContext(ctx, "coach motm recorded", "fixture_id", fixtureID, "player_id", playerID, "by", actor.UserID)
	return updated, nil
}

// VoteParent records the calling parent's vote and returns the fixture with
// the recomputed parent award.
func (s *MotmService) VoteParent(ctx context.Context, actor user.Principal, fixtureID, playerID int64) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MotmService.VoteParent")
	defer span.End()

	if err := authorize(s.policy, actor, access.OpVoteParentMotm); err != nil {
		return fixture.Fixture{}, err
	}

	updated, err := mutate(ctx, s.store, "vote_parent_motm", func(state club.State) (club.State, fixture.Fixture, error) {
		return club.VoteParentMotm(state, fixtureID, actor.UserID, playerID)
	})
	if err != nil {
		return updated, err
	}

	s.logger.InfoContext(ctx, "parent motm vote recorded",
		"fixture_id", fixtureID,
		"player_id", playerID,
		"votes", len(updated.ParentVotes),
		"by", actor.UserID,
	)
	return updated, nil
}

func (s *MotmService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MotmService.Leaderboard")
	defer span.End()

	state, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	standings := motm.Leaderboard(state.Fixtures)
	out := make([]LeaderboardEntry, 0, len(standings))
	for _, st := range standings {
		out = append(out, LeaderboardEntry{
			Player:       resolvePlayer(state, st.PlayerID),
			CoachAwards:  st.CoachAwards,
			ParentAwards: st.ParentAwards,
			Total:        st.Total,
		})
	}
	return out, nil
}
