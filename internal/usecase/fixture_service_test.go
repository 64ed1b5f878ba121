package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/club-manager/internal/domain/fixture"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

func TestFixtureService_CRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t, fixtureState())
	svc := NewFixtureService(env.store, env.policy, logging.NewNop())

	created, err := svc.Add(ctx, coachActor, AddFixtureInput{Opponent: "Valley Athletic", Date: "2025-11-09", Time: "10:30"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID != 5 || created.Venue != fixture.VenueHome || created.Status != fixture.StatusUpcoming {
		t.Fatalf("unexpected created fixture %+v", created)
	}
	if created.HomeScore != nil || created.AwayScore != nil || len(created.Scorers) != 0 {
		t.Fatalf("expected unset scores and no scorers, got %+v", created)
	}

	updated, err := svc.Update(ctx, adminActor, created.ID, fixture.Update{Venue: strRef("away"), Time: strRef("14:00")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Venue != fixture.VenueAway || updated.Time != "14:00" || updated.Opponent != "Valley Athletic" {
		t.Fatalf("unexpected updated fixture %+v", updated)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil || got.Time != "14:00" {
		t.Fatalf("get: %+v %v", got, err)
	}

	if err := svc.Delete(ctx, adminActor, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	all, err := svc.List(ctx)
	if err != nil || len(all) != 4 {
		t.Fatalf("expected four fixtures, got %d err=%v", len(all), err)
	}
}

func TestFixtureService_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t, fixtureState())
	svc := NewFixtureService(env.store, env.policy, logging.NewNop())
	live := NewLiveMatchService(env.store, env.policy, logging.NewNop())

	if _, err := svc.Add(ctx, parentActor, AddFixtureInput{Opponent: "X", Date: "d", Time: "t"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := svc.Add(ctx, coachActor, AddFixtureInput{Opponent: "X", Date: "d", Time: "t", Venue: "Moon"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid venue, got %v", err)
	}
	if _, err := svc.Update(ctx, coachActor, 1, fixture.Update{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid empty update, got %v", err)
	}

	if _, err := live.Start(ctx, coachActor, 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.Delete(ctx, coachActor, 1); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict deleting live fixture, got %v", err)
	}
	if _, err := svc.Update(ctx, coachActor, 1, fixture.Update{Opponent: strRef("Other")}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict updating live fixture, got %v", err)
	}
}
