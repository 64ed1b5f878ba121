package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-manager/internal/domain/access"
	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/user"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

type AddPlayerInput struct {
	Name     string
	Position string
	Number   *int
}

type RosterService struct {
	store  *ClubStore
	policy access.Policy
	logger *logging.Logger
}

func NewRosterService(store *ClubStore, policy access.Policy, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterService{store: store, policy: policy, logger: logger}
}

// List returns the roster in insertion order, optionally only active players.
func (s *RosterService) List(ctx context.Context, activeOnly bool) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.List")
	defer span.End()

	state, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		return player.Active(state.Players), nil
	}
	return state.Players, nil
}

func (s *RosterService) Add(ctx context.Context, actor user.Principal, input AddPlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Add")
	defer span.End()

	if err := authorize(s.policy, actor, access.OpManageRoster); err != nil {
		return player.Player{}, err
	}

	created, err := mutate(ctx, s.store, "add_player", func(state club.State) (club.State, player.Player, error) {
		return club.AddPlayer(state, player.NewPlayer{
			Name:     input.Name,
			Position: input.Position,
			Number:   input.Number,
		})
	})
	if err != nil {
		return created, err
	}

	s.logger.InfoContext(ctx, "player added", "player_id", created.ID, "by", actor.UserID)
	return created, nil
}

func (s *RosterService) Update(ctx context.Context, actor user.Principal, playerID int64, update player.Update) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Update")
	defer span.End()

	if err := authorize(s.policy, actor, access.OpManageRoster); err != nil {
		return player.Player{}, err
	}
	if update.IsEmpty() {
		return player.Player{}, fmt.Errorf("%w: no player fields to update", ErrInvalidInput)
	}

	updated, err := mutate(ctx, s.store, "update_player", func(state club.State) (club.State, player.Player, error) {
		return club.UpdatePlayer(state, playerID, update)
	})
	if err != nil {
		return updated, err
	}

	s.logger.InfoContext(ctx, "player updated", "player_id", playerID, "by", actor.UserID)
	return updated, nil
}

func (s *RosterService) Delete(ctx context.Context, actor user.Principal, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Delete")
	defer span.End()

	if err := authorize(s.policy, actor, access.OpManageRoster); err != nil {
		return err
	}

	_, err := mutate(ctx, s.store, "delete_player", func(state club.State) (club.State, struct{}, error) {
		next, err := club.DeletePlayer(state, playerID)
		return next, struct{}{}, err
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", playerID, "by", actor.UserID)
	return nil
}
