package usecase

import (
	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/domain/fixture"
	"github.com/riskibarqy/club-manager/internal/domain/motm"
	"github.com/riskibarqy/club-manager/internal/domain/player"
)

// PlayerRef is a player id paired with its display name. Ids that no longer
// resolve carry player.UnknownName.
type PlayerRef struct {
	PlayerID int64
	Name     string
	Number   int
}

// MatchView is a fixture with every player reference resolved for display.
type MatchView struct {
	Fixture fixture.Fixture
	Scorers []PlayerRef
}

// ResultView is a completed fixture with MOTM outcomes resolved.
type ResultView struct {
	MatchView
	CoachMotm       *PlayerRef
	ParentMotm      *PlayerRef
	ParentVoteCount int
	VoteCounts      map[int64]int
	// ViewerVote is the player the requesting parent voted for, if any.
	ViewerVote *int64
}

type LeaderboardEntry struct {
	Player       PlayerRef
	CoachAwards  int
	ParentAwards int
	Total        int
}

func resolvePlayer(state club.State, id int64) PlayerRef {
	ref := PlayerRef{PlayerID: id, Name: player.UnknownName}
	if p, ok := state.Player(id); ok {
		ref.Name = p.Name
		ref.Number = int(p.Number)
	}
	return ref
}

func resolveOptional(state club.State, id *int64) *PlayerRef {
	if id == nil {
		return nil
	}
	ref := resolvePlayer(state, *id)
	return &ref
}

func newMatchView(state club.State, f fixture.Fixture) MatchView {
	scorers := make([]PlayerRef, 0, len(f.Scorers))
	for _, id := range f.Scorers {
		scorers = append(scorers, resolvePlayer(state, id))
	}
	return MatchView{Fixture: f.Clone(), Scorers: scorers}
}

func newResultView(state club.State, f fixture.Fixture, viewerID int64) ResultView {
	view := ResultView{
		MatchView:       newMatchView(state, f),
		CoachMotm:       resolveOptional(state, f.CoachMotm),
		ParentMotm:      resolveOptional(state, f.ParentMotm),
		ParentVoteCount: len(f.ParentVotes),
		VoteCounts:      motm.VoteCounts(f.ParentVotes),
	}
	if pick, ok := f.ParentVotes[viewerID]; ok {
		view.ViewerVote = &pick
	}
	return view
}
