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

func TestRosterService_AddUpdateDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t, fixtureState())
	svc := NewRosterService(env.store, env.policy, logging.NewNop())

	created, err := svc.Add(ctx, adminActor, AddPlayerInput{Name: " Sam Reed ", Position: "Goalkeeper", Number: intRef(1)})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID != 4 || created.Name != "Sam Reed" || !created.Active {
		t.Fatalf("unexpected created player %+v", created)
	}

	updated, err := svc.Update(ctx, coachActor, created.ID, player.Update{Number: intRef(13), Active: new(bool)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Number != 13 || updated.Active {
		t.Fatalf("unexpected updated player %+v", updated)
	}

	active, err := svc.List(ctx, true)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected two active players, got %d", len(active))
	}

	if err := svc.Delete(ctx, coachActor, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, err := svc.List(ctx, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected original roster after delete, got %d", len(all))
	}

	again, err := svc.Add(ctx, adminActor, AddPlayerInput{Name: "Leo Park", Position: "Defender", Number: intRef(5)})
	if err != nil {
		t.Fatalf("add after delete: %v", err)
	}
	if again.ID != 5 {
		t.Fatalf("expected deleted id to stay retired, got %d", again.ID)
	}
}

func TestRosterService_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t, fixtureState())
	svc := NewRosterService(env.store, env.policy, logging.NewNop())

	t.Run("parent cannot manage roster", func(t *testing.T) {
		_, err := svc.Add(ctx, parentActor, AddPlayerInput{Name: "X", Position: "Y", Number: intRef(1)})
		if !errors.Is(err, ErrForbidden) || !errors.Is(err, access.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("missing number is invalid", func(t *testing.T) {
		_, err := svc.Add(ctx, coachActor, AddPlayerInput{Name: "X", Position: "Y"})
		if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, player.ErrInvalidPlayer) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})

	t.Run("empty update is invalid", func(t *testing.T) {
		if _, err := svc.Update(ctx, coachActor, 1, player.Update{}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		_, err := svc.Update(ctx, coachActor, 404, player.Update{Name: strRef("Ghost")})
		if !errors.Is(err, ErrNotFound) || !errors.Is(err, club.ErrPlayerNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
		if err := svc.Delete(ctx, coachActor, 404); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found on delete, got %v", err)
		}
	})
}
