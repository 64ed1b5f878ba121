package usecase

import (
	"context"

	"github.com/riskibarqy/club-manager/internal/domain/fixture"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/user"
)

const recentResultsLimit = 3

type Dashboard struct {
	LiveMatch     *MatchView
	NextFixture   *fixture.Fixture
	RecentResults []ResultView
	ActivePlayers int
	TotalPlayers  int
}

type DashboardService struct {
	store *ClubStore
}

func NewDashboardService(store *ClubStore) *DashboardService {
	return &DashboardService{store: store}
}

func (s *DashboardService) Get(ctx context.Context, viewer user.Principal) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	state, err := s.store.Snapshot(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	out := Dashboard{
		ActivePlayers: len(player.Active(state.Players)),
		TotalPlayers:  len(state.Players),
	}
	if state.LiveMatch != nil {
		live := newMatchView(state, *state.LiveMatch)
		out.LiveMatch = &live
	}
	if next, ok := fixture.NextUpcoming(state.Fixtures); ok {
		out.NextFixture = &next
	}

	completed := fixture.Completed(state.Fixtures)
	if len(completed) > recentResultsLimit {
		completed = completed[:recentResultsLimit]
	}
	out.RecentResults = make([]ResultView, 0, len(completed))
	for _, f := range completed {
		out.RecentResults = append(out.RecentResults, newResultView(state, f, viewer.UserID))
	}

	return out, nil
}

// Results lists completed fixtures newest first with MOTM outcomes resolved.
func (s *DashboardService) Results(ctx context.Context, viewer user.Principal) ([]ResultView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Results")
	defer span.End()

	state, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	completed := fixture.Completed(state.Fixtures)
	out := make([]ResultView, 0, len(completed))
	for _, f := range completed {
		out = append(out, newResultView(state, f, viewer.UserID))
	}
	return out, nil
}
