package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/fixture"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/user"
	"github.com/riskibarqy/club-manager/internal/usecase"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

type createPlayerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Position string `json:"position" validate:"required,max=50"`
	Number   *int   `json:"number" validate:"required,min=0,max=999"`
}

type updatePlayerRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Position *string `json:"position" validate:"omitempty,min=1,max=50"`
	Number   *int    `json:"number" validate:"omitempty,min=0,max=999"`
	Active   *bool   `json:"active"`
}

type createFixtureRequest struct {
	Opponent string `json:"opponent" validate:"required,max=100"`
	Date     string `json:"date" validate:"required,max=32"`
	Time     string `json:"time" validate:"required,max=32"`
	Venue    string `json:"venue" validate:"omitempty,max=16"`
}

type updateFixtureRequest struct {
	Opponent *string `json:"opponent" validate:"omitempty,min=1,max=100"`
	Date     *string `json:"date" validate:"omitempty,min=1,max=32"`
	Time     *string `json:"time" validate:"omitempty,min=1,max=32"`
	Venue    *string `json:"venue" validate:"omitempty,max=16"`
}

type scoreRequest struct {
	Side  string `json:"side" validate:"required"`
	Value *int   `json:"value" validate:"required"`
}

type playerPickRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
}

type meDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type sessionDTO struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	User      meDTO  `json:"user"`
}

type playerDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Number   int    `json:"number"`
	Active   bool   `json:"active"`
}

type fixtureDTO struct {
	ID              int64   `json:"id"`
	Opponent        string  `json:"opponent"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Venue           string  `json:"venue"`
	Status          string  `json:"status"`
	HomeScore       *int    `json:"home_score"`
	AwayScore       *int    `json:"away_score"`
	Scorers         []int64 `json:"scorers"`
	CoachMotm       *int64  `json:"coach_motm"`
	ParentMotm      *int64  `json:"parent_motm"`
	ParentVoteCount int     `json:"parent_vote_count"`
}

type playerRefDTO struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
	Number   int    `json:"number,omitempty"`
}

type matchDTO struct {
	Fixture fixtureDTO     `json:"fixture"`
	Scorers []playerRefDTO `json:"scorers"`
}

type liveDTO struct {
	Active bool      `json:"active"`
	Match  *matchDTO `json:"match,omitempty"`
}

type resultDTO struct {
	Fixture         fixtureDTO     `json:"fixture"`
	Scorers         []playerRefDTO `json:"scorers"`
	CoachMotm       *playerRefDTO  `json:"coach_motm"`
	ParentMotm      *playerRefDTO  `json:"parent_motm"`
	ParentVoteCount int            `json:"parent_vote_count"`
	VoteCounts      map[int64]int  `json:"vote_counts"`
	MyVote          *int64         `json:"my_vote,omitempty"`
}

type leaderboardEntryDTO struct {
	Player       playerRefDTO `json:"player"`
	CoachAwards  int          `json:"coach_awards"`
	ParentAwards int          `json:"parent_awards"`
	Total        int          `json:"total"`
}

type dashboardDTO struct {
	LiveMatch     *matchDTO   `json:"live_match"`
	NextFixture   *fixtureDTO `json:"next_fixture"`
	RecentResults []resultDTO `json:"recent_results"`
	ActivePlayers int         `json:"active_players"`
	TotalPlayers  int         `json:"total_players"`
}

func principalToDTO(p user.Principal) meDTO {
	return meDTO{
		ID:       p.UserID,
		Username: p.Username,
		Name:     p.DisplayName,
		Role:     string(p.Role),
	}
}

func sessionToDTO(s usecase.Session) sessionDTO {
	return sessionDTO{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
		User:      principalToDTO(s.Principal),
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:       p.ID,
		Name:     p.Name,
		Position: p.Position,
		Number:   int(p.Number),
		Active:   p.Active,
	}
}

func playersToDTO(ctx context.Context, items []player.Player) []playerDTO {
	_, span := startSpan(ctx, "httpapi.playersToDTO")
	defer span.End()

	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToDTO(p))
	}
	return out
}

func fixtureToDTO(f fixture.Fixture) fixtureDTO {
	scorers := f.Scorers
	if scorers == nil {
		scorers = []int64{}
	}
	return fixtureDTO{
		ID:              f.ID,
		Opponent:        f.Opponent,
		Date:            f.Date,
		Time:            f.Time,
		Venue:           f.Venue,
		Status:          fixture.NormalizeStatus(f.Status),
		HomeScore:       f.HomeScore,
		AwayScore:       f.AwayScore,
		Scorers:         scorers,
		CoachMotm:       f.CoachMotm,
		ParentMotm:      f.ParentMotm,
		ParentVoteCount: len(f.ParentVotes),
	}
}

func fixturesToDTO(ctx context.Context, items []fixture.Fixture) []fixtureDTO {
	_, span := startSpan(ctx, "httpapi.fixturesToDTO")
	defer span.End()

	out := make([]fixtureDTO, 0, len(items))
	for _, f := range items {
		out = append(out, fixtureToDTO(f))
	}
	return out
}

func playerRefToDTO(ref usecase.PlayerRef) playerRefDTO {
	return playerRefDTO{PlayerID: ref.PlayerID, Name: ref.Name, Number: ref.Number}
}

func optionalPlayerRefToDTO(ref *usecase.PlayerRef) *playerRefDTO {
	if ref == nil {
		return nil
	}
	out := playerRefToDTO(*ref)
	return &out
}

func matchToDTO(view usecase.MatchView) matchDTO {
	scorers := make([]playerRefDTO, 0, len(view.Scorers))
	for _, ref := range view.Scorers {
		scorers = append(scorers, playerRefToDTO(ref))
	}
	return matchDTO{Fixture: fixtureToDTO(view.Fixture), Scorers: scorers}
}

func resultToDTO(view usecase.ResultView) resultDTO {
	match := matchToDTO(view.MatchView)
	return resultDTO{
		Fixture:         match.Fixture,
		Scorers:         match.Scorers,
		CoachMotm:       optionalPlayerRefToDTO(view.CoachMotm),
		ParentMotm:      optionalPlayerRefToDTO(view.ParentMotm),
		ParentVoteCount: view.ParentVoteCount,
		VoteCounts:      view.VoteCounts,
		MyVote:          view.ViewerVote,
	}
}

func resultsToDTO(ctx context.Context, items []usecase.ResultView) []resultDTO {
	_, span := startSpan(ctx, "httpapi.resultsToDTO")
	defer span.End()

	out := make([]resultDTO, 0, len(items))
	for _, item := range items {
		out = append(out, resultToDTO(item))
	}
	return out
}

func leaderboardToDTO(items []usecase.LeaderboardEntry) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, leaderboardEntryDTO{
			Player:       playerRefToDTO(item.Player),
			CoachAwards:  item.CoachAwards,
			ParentAwards: item.ParentAwards,
			Total:        item.Total,
		})
	}
	return out
}

func dashboardToDTO(ctx context.Context, d usecase.Dashboard) dashboardDTO {
	out := dashboardDTO{
		RecentResults: resultsToDTO(ctx, d.RecentResults),
		ActivePlayers: d.ActivePlayers,
		TotalPlayers:  d.TotalPlayers,
	}
	if d.LiveMatch != nil {
		live := matchToDTO(*d.LiveMatch)
		out.LiveMatch = &live
	}
	if d.NextFixture != nil {
		next := fixtureToDTO(*d.NextFixture)
		out.NextFixture = &next
	}
	return out
}
