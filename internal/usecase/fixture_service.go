package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-manager/internal/domain/access"
	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/domain/fixture"
	"github.com/riskibarqy/club-manager/internal/domain/user"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

type AddFixtureInput struct {
	Opponent string
	Date     string
	Time     string
	Venue    string
}

type FixtureService struct {
	store  *ClubStore
	policy access.Policy
	logger *logging.Logger
}

func NewFixtureService(store *ClubStore, policy access.Policy, logger *logging.Logger) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixtureService{store: store, policy: policy, logger: logger}
}

// List returns every fixture in schedule list order.
func (s *FixtureService) List(ctx context.Context) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.List")
	defer span.End()

	state, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return state.Fixtures, nil
}

func (s *FixtureService) Get(ctx context.Context, fixtureID int64) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Get")
	defer span.End()

	state, err := s.store.Snapshot(ctx)
	if err != nil {
		return fixture.Fixture{}, err
	}
	item, ok := state.Fixture(fixtureID)
	if !ok {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%d", ErrNotFound, fixtureID)
	}
	return item, nil
}

func (s *FixtureService) Add(ctx context.Context, actor user.Principal, input AddFixtureInput) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Add")
	defer span.End()

	if err := authorize(s.policy, actor, access.OpManageFixtures); err != nil {
		return fixture.Fixture{}, err
	}

	created, err := mutate(ctx, s.store, "add_fixture", func(state club.State) (club.State, fixture.Fixture, error) {
		return club.AddFixture(state, fixture.NewFixture{
			Opponent: input.Opponent,
			Date:     input.Date,
			Time:     input.Time,
			Venue:    input.Venue,
		})
	})
	if err != nil {
		return created, err
	}

	s.logger.InfoContext(ctx, "fixture added", "fixture_id", created.ID, "opponent", created.Opponent, "by", actor.UserID)
	return created, nil
}

func (s *FixtureService) Update(ctx context.Context, actor user.Principal, fixtureID int64, update fixture.Update) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Update")
	defer span.End()

	if err := authorize(s.policy, actor, access.OpManageFixtures); err != nil {
		return fixture.Fixture{}, err
	}
	if update.IsEmpty() {
		return fixture.Fixture{}, fmt.Errorf("%w: no fixture fields to update", ErrInvalidInput)
	}

	updated, err := mutate(ctx, s.store, "update_fixture", func(state club.State) (club.State, fixture.Fixture, error) {
		return club.UpdateFixture(state, fixtureID, update)
	})
	if err != nil {
		return updated, err
	}

	s.logger.InfoContext(ctx, "fixture updated", "fixture_id", fixtureID, "by", actor.UserID)
	return updated, nil
}

func (s *FixtureService) Delete(ctx context.Context, actor user.Principal, fixtureID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Delete")
	defer span.End()

	if err := authorize(s.policy, actor, access.OpManageFixtures); err != nil {
		return err
	}

	_, err := mutate(ctx, s.store, "delete_fixture", func(state club.State) (club.State, struct{}, error) {
		next, err := club.DeleteFixture(state, fixtureID)
		return next, struct{}{}, err
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "fixture deleted", "fixture_id", fixtureID, "by", actor.UserID)
	return nil
}
