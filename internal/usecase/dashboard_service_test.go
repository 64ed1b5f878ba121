package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

func TestDashboardService_Get(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t, fixtureState())
	live := NewLiveMatchService(env.store, env.policy, logging.NewNop())
	motmSvc := NewMotmService(env.store, env.policy, logging.NewNop())
	svc := NewDashboardService(env.store)

	empty, err := svc.Get(ctx, parentActor)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if empty.LiveMatch != nil || len(empty.RecentResults) != 0 {
		t.Fatalf("expected no live match and no results, got %+v", empty)
	}
	if empty.NextFixture == nil || empty.NextFixture.ID != 1 {
		t.Fatalf("expected fixture 1 next, got %+v", empty.NextFixture)
	}
	if empty.ActivePlayers != 2 || empty.TotalPlayers != 3 {
		t.Fatalf("unexpected player counts %d/%d", empty.ActivePlayers, empty.TotalPlayers)
	}

	playMatch(t, live, 1, 1, 0, 1)
	playMatch(t, live, 2, 2, 2, 2, 1)
	playMatch(t, live, 3, 0, 3)
	if _, err := motmSvc.VoteParent(ctx, parentActor, 2, 2); err != nil {
		t.Fatalf("vote: %v", err)
	}
	if _, err := live.Start(ctx, coachActor, 4); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := live.AddScorer(ctx, coachActor, 1); err != nil {
		t.Fatalf("add scorer: %v", err)
	}

	got, err := svc.Get(ctx, parentActor)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.LiveMatch == nil || got.LiveMatch.Fixture.ID != 4 || len(got.LiveMatch.Scorers) != 1 || got.LiveMatch.Scorers[0].Name != "Tommy Wilson" {
		t.Fatalf("unexpected live view %+v", got.LiveMatch)
	}
	if got.NextFixture == nil || got.NextFixture.ID != 4 {
		t.Fatalf("expected live fixture still listed as next, got %+v", got.NextFixture)
	}
	if len(got.RecentResults) != 3 {
		t.Fatalf("expected three recent results, got %d", len(got.RecentResults))
	}
	wantOrder := []int64{3, 2, 1}
	for i, id := range wantOrder {
		if got.RecentResults[i].Fixture.ID != id {
			t.Fatalf("result %d: expected fixture %d, got %d", i, id, got.RecentResults[i].Fixture.ID)
		}
	}

	voted := got.RecentResults[1]
	if voted.ViewerVote == nil || *voted.ViewerVote != 2 {
		t.Fatalf("expected viewer vote 2, got %v", voted.ViewerVote)
	}
	if voted.ParentMotm == nil || voted.ParentMotm.Name != "Jake Foster" || voted.ParentVoteCount != 1 || voted.VoteCounts[2] != 1 {
		t.Fatalf("unexpected vote view %+v", voted)
	}
	if got.RecentResults[0].ViewerVote != nil {
		t.Fatalf("expected no viewer vote on fixture 3")
	}

	other, err := svc.Get(ctx, parent2Actor)
	if err != nil {
		t.Fatalf("get as other parent: %v", err)
	}
	if other.RecentResults[1].ViewerVote != nil {
		t.Fatalf("expected viewer vote scoped to caller")
	}
}

func TestDashboardService_Results(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t, fixtureState())
	live := NewLiveMatchService(env.store, env.policy, logging.NewNop())
	svc := NewDashboardService(env.store)

	for _, id := range []int64{1, 2, 3, 4} {
		playMatch(t, live, id, int(id), 0)
	}

	results, err := svc.Results(ctx, coachActor)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if len(results) != 4 || results[0].Fixture.ID != 4 || results[3].Fixture.ID != 1 {
		t.Fatalf("expected all four results newest first, got %+v", results)
	}
	if results[0].Scorers == nil || len(results[0].Scorers) != 0 {
		t.Fatalf("expected empty scorer list, got %v", results[0].Scorers)
	}
}
