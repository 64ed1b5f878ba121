package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/club-manager/internal/domain/access"
	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

func TestMotmService_CoachVote(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t, fixtureState())
	live := NewLiveMatchService(env.store, env.policy, logging.NewNop())
	svc := NewMotmService(env.store, env.policy, logging.NewNop())

	if _, err := svc.VoteCoach(ctx, coachActor, 1, 1); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on upcoming fixture, got %v", err)
	}

	playMatch(t, live, 1, 3, 0, 1, 1, 2)

	if _, err := svc.VoteCoach(ctx, parentActor, 1, 1); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected parent forbidden, got %v", err)
	}
	if _, err := svc.VoteCoach(ctx, adminActor, 1, 1); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected admin forbidden by default, got %v", err)
	}
	if _, err := svc.VoteCoach(ctx, coachActor, 1, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected unknown player not found, got %v", err)
	}

	if _, err := svc.VoteCoach(ctx, coachActor, 1, 1); err != nil {
		t.Fatalf("vote coach: %v", err)
	}
	updated, err := svc.VoteCoach(ctx, coachActor, 1, 2)
	if err != nil {
		t.Fatalf("revote coach: %v", err)
	}
	if updated.CoachMotm == nil || *updated.CoachMotm != 2 {
		t.Fatalf("expected coach pick overwritten to 2, got %v", updated.CoachMotm)
	}
}

func TestMotmService_AdminCoachVoteOption(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t, fixtureState())
	policy := access.NewPolicy(access.Options{AdminCanVoteCoach: true})
	playMatch(t, NewLiveMatchService(env.store, policy, logging.NewNop()), 1, 1, 0, 2)

	svc := NewMotmService(env.store, policy, logging.NewNop())
	updated, err := svc.VoteCoach(ctx, adminActor, 1, 2)
	if err != nil {
		t.Fatalf("admin coach vote: %v", err)
	}
	if *updated.CoachMotm != 2 {
		t.Fatalf("expected coach pick 2, got %d", *updated.CoachMotm)
	}
}

func TestMotmService_ParentVotes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t, fixtureState())
	playMatch(t, NewLiveMatchService(env.store, env.policy, logging.NewNop()), 1, 2, 2)
	svc := NewMotmService(env.store, env.policy, logging.NewNop())

	if _, err := svc.VoteParent(ctx, coachActor, 1, 1); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected coach forbidden from parent vote, got %v", err)
	}

	first, err := svc.VoteParent(ctx, parentActor, 1, 2)
	if err != nil {
		t.Fatalf("parent vote: %v", err)
	}
	if *first.ParentMotm != 2 {
		t.Fatalf("expected single vote to win, got %d", *first.ParentMotm)
	}

	tied, err := svc.VoteParent(ctx, parent2Actor, 1, 1)
	if err != nil {
		t.Fatalf("second parent vote: %v", err)
	}
	if len(tied.ParentVotes) != 2 || *tied.ParentMotm != 1 {
		t.Fatalf("expected tie resolved to lowest id 1, got votes=%v motm=%v", tied.ParentVotes, *tied.ParentMotm)
	}

	revote, err := svc.VoteParent(ctx, parent2Actor, 1, 2)
	if err != nil {
		t.Fatalf("revote: %v", err)
	}
	if len(revote.ParentVotes) != 2 || *revote.ParentMotm != 2 {
		t.Fatalf("expected revote to replace, got votes=%v motm=%v", revote.ParentVotes, *revote.ParentMotm)
	}
}

func TestMotmService_Leaderboard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t, fixtureState())
	live := NewLiveMatchService(env.store, env.policy, logging.NewNop())
	roster := NewRosterService(env.store, env.policy, logging.NewNop())
	svc := NewMotmService(env.store, env.policy, logging.NewNop())

	playMatch(t, live, 1, 1, 0, 1)
	playMatch(t, live, 2, 0, 1)

	steps := []struct {
		name string
		run  func() error
	}{
		{"coach fixture 1", func() error { _, err := svc.VoteCoach(ctx, coachActor, 1, 1); return err }},
		{"parent fixture 1", func() error { _, err := svc.VoteParent(ctx, parentActor, 1, 1); return err }},
		{"coach fixture 2", func() error { _, err := svc.VoteCoach(ctx, coachActor, 2, 2); return err }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
	}

	board, err := svc.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("expected two rows, got %+v", board)
	}
	if board[0].Player.PlayerID != 1 || board[0].Total != 2 || board[0].CoachAwards != 1 || board[0].ParentAwards != 1 {
		t.Fatalf("unexpected leader %+v", board[0])
	}
	if board[1].Player.Name != "Jake Foster" || board[1].Total != 1 {
		t.Fatalf("unexpected runner up %+v", board[1])
	}

	if err := roster.Delete(ctx, adminActor, 2); err != nil {
		t.Fatalf("delete player: %v", err)
	}
	board, err = svc.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard after delete: %v", err)
	}
	if board[1].Player.PlayerID != 2 || board[1].Player.Name != player.UnknownName {
		t.Fatalf("expected deleted player rendered unknown, got %+v", board[1])
	}

	if _, err := svc.VoteCoach(ctx, coachActor, 2, 2); !errors.Is(err, club.ErrPlayerNotFound) {
		t.Fatalf("expected vote for deleted player rejected, got %v", err)
	}
}
