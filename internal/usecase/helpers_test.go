package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/club-manager/internal/domain/access"
	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/domain/fixture"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/user"
	clubmock "github.com/riskibarqy/club-manager/internal/mocks/domain/club"
	usecasemock "github.com/riskibarqy/club-manager/internal/mocks/usecase"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

var (
	adminActor   = user.Principal{UserID: 1, Username: "admin", Role: user.RoleAdmin, DisplayName: "Admin User"}
	coachActor   = user.Principal{UserID: 2, Username: "coach", Role: user.RoleCoach, DisplayName: "Head Coach"}
	parentActor  = user.Principal{UserID: 3, Username: "parent1", Role: user.RoleParent, DisplayName: "Parent Smith"}
	parent2Actor = user.Principal{UserID: 4, Username: "parent2", Role: user.RoleParent, DisplayName: "Parent Jones"}
)

func fixtureState() club.State {
	return club.NewState(
		[]user.User{
			{ID: 1, Username: "admin", Password: "admin123", Role: user.RoleAdmin, DisplayName: "Admin User"},
			{ID: 2, Username: "coach", Password: "coach123", Role: user.RoleCoach, DisplayName: "Head Coach"},
			{ID: 3, Username: "parent1", Password: "parent123", Role: user.RoleParent, DisplayName: "Parent Smith"},
			{ID: 4, Username: "parent2", Password: "parent456", Role: user.RoleParent, DisplayName: "Parent Jones"},
		},
		[]player.Player{
			{ID: 1, Name: "Tommy Wilson", Position: "Forward", Number: 9, Active: true},
			{ID: 2, Name: "Jake Foster", Position: "Midfielder", Number: 7, Active: true},
			{ID: 3, Name: "Ben Clarke", Position: "Defender", Number: 4, Active: false},
		},
		[]fixture.Fixture{
			{ID: 1, Opponent: "Riverside FC", Date: "2025-10-12", Time: "10:00", Venue: fixture.VenueHome, Status: fixture.StatusUpcoming},
			{ID: 2, Opponent: "Hillside United", Date: "2025-10-19", Time: "11:00", Venue: fixture.VenueAway, Status: fixture.StatusUpcoming},
			{ID: 3, Opponent: "Lakeside Rovers", Date: "2025-10-26", Time: "09:30", Venue: fixture.VenueHome, Status: fixture.StatusUpcoming},
			{ID: 4, Opponent: "Meadow Town", Date: "2025-11-02", Time: "10:00", Venue: fixture.VenueAway, Status: fixture.StatusUpcoming},
		},
	)
}

type testEnv struct {
	store     *ClubStore
	repo      *clubmock.Repository
	persister *usecasemock.SnapshotPersister
	policy    access.Policy
}

// newTestEnv builds a store preloaded with state whose persister accepts
// every snapshot.
func newTestEnv(t *testing.T, state club.State) testEnv {
	t.Helper()

	repo := clubmock.NewRepository(t)
	repo.On("Load", mock.Anything).Return(state, true, nil).Once()

	persister := usecasemock.NewSnapshotPersister(t)
	persister.On("Persist", mock.Anything, mock.Anything).Return(uint64(1), nil).Maybe()

	store := NewClubStore(repo, persister, logging.NewNop(), ClubStoreOptions{})
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load store: %v", err)
	}

	return testEnv{store: store, repo: repo, persister: persister, policy: access.DefaultPolicy()}
}

func intRef(v int) *int {
	return &v
}

func strRef(v string) *string {
	return &v
}

// playMatch runs a fixture through live play with the given scorers.
func playMatch(t *testing.T, svc *LiveMatchService, fixtureID int64, home, away int, scorers ...int64) {
	t.Helper()

	ctx := context.Background()
	if _, err := svc.Start(ctx, coachActor, fixtureID); err != nil {
		t.Fatalf("start fixture %d: %v", fixtureID, err)
	}
	if _, err := svc.SetScore(ctx, coachActor, fixture.SideHome, home); err != nil {
		t.Fatalf("set home score: %v", err)
	}
	if _, err := svc.SetScore(ctx, coachActor, fixture.SideAway, away); err != nil {
		t.Fatalf("set away score: %v", err)
	}
	for _, id := range scorers {
		if _, err := svc.AddScorer(ctx, coachActor, id); err != nil {
			t.Fatalf("add scorer %d: %v", id, err)
		}
	}
	if _, err := svc.End(ctx, coachActor); err != nil {
		t.Fatalf("end fixture %d: %v", fixtureID, err)
	}
}
