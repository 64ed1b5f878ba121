package usecase

import (
	"context"

	"github.com/riskibarqy/club-manager/internal/domain/access"
	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/domain/fixture"
	"github.com/riskibarqy/club-manager/internal/domain/user"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

type LiveMatchService struct {
	store  *ClubStore
	policy access.Policy
	logger *logging.Logger
}

func NewLiveMatchService(store *ClubStore, policy access.Policy, logger *logging.Logger) *LiveMatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LiveMatchService{store: store, policy: policy, logger: logger}
}

// Current returns the live match with scorer names resolved. ok is false when
// no match is being played.
func (s *LiveMatchService) Current(ctx context.Context) (MatchView, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.Current")
	defer span.End()

	state, err := s.store.Snapshot(ctx)
	if err != nil {
		return MatchView{}, false, err
	}
	if state.LiveMatch == nil {
		return MatchView{}, false, nil
	}
	return newMatchView(state, *state.LiveMatch), true, nil
}

func (s *LiveMatchService) Start(ctx context.Context, actor user.Principal, fixtureID int64) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.Start")
	defer span.End()

	if err := authorize(s.policy, actor, access.OpRunLiveMatch); err != nil {
		return fixture.Fixture{}, err
	}

	live, err := mutate(ctx, s.store, "start_live_match", func(state club.State) (club.State, fixture.Fixture, error) {
		return club.StartLiveMatch(state, fixtureID)
	})
	if err != nil {
		return live, err
	}

	s.logger.InfoContext(ctx, "live match started", "fixture_id", fixtureID, "opponent", live.Opponent, "by", actor.UserID)
	return live, nil
}

func (s *LiveMatchService) SetScore(ctx context.Context, actor user.Principal, side string, value int) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.SetScore")
	defer span.End()

	if err := authorize(s.policy, actor, access.OpRunLiveMatch); err != nil {
		return fixture.Fixture{}, err
	}

	live, err := mutate(ctx, s.store, "set_score", func(state club.State) (club.State, fixture.Fixture, error) {
		return club.SetScore(state, side, value)
	})
	if err != nil {
		return live, err
	}

	s.logger.InfoContext(ctx, "live score updated", "fixture_id", live.ID, "side", side, "value", value)
	return live, nil
}

func (s *LiveMatchService) AddScorer(ctx context.Context, actor user.Principal, playerID int64) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.AddScorer")
	defer span.End()

	if err := authorize(s.policy, actor, access.OpRunLiveMatch); err != nil {
		return fixture.Fixture{}, err
	}

	live, err := mutate(ctx, s.store, "add_scorer", func(state club.State) (club.State, fixture.Fixture, error) {
		return club.AddScorer(state, playerID)
	})
	if err != nil {
		return live, err
	}

	s.logger.InfoContext(ctx, "goal scorer recorded", "fixture_id", live.ID, "player_id", playerID)
	return live, nil
}

func (s *LiveMatchService) End(ctx context.Context, actor user.Principal) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.End")
	defer span.End()

	if err := authorize(s.policy, actor, access.OpRunLiveMatch); err != nil {
		return fixture.Fixture{}, err
	}

	final, err := mutate(ctx, s.store, "end_live_match", club.EndLiveMatch)
	if err != nil {
		return final, err
	}

	s.logger.InfoContext(ctx, "live match ended",
		"fixture_id", final.ID,
		"home_score", derefInt(final.HomeScore),
		"away_score", derefInt(final.AwayScore),
		"by", actor.UserID,
	)
	return final, nil
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
