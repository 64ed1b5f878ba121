package motm

import (
	"sort"

	"github.com/riskibarqy/club-manager/internal/domain/fixture"
)

// ParentWinner returns the player with the most parent votes. Equal counts
// resolve to the lowest player id so the result depends only on the vote map.
func ParentWinner(votes map[int64]int64) *int64 {
	if len(votes) == 0 {
		return nil
	}

	counts := make(map[int64]int, len(votes))
	for _, playerID := range votes {
		counts[playerID]++
	}

	var (
		winner int64
		best   int
	)
	for playerID, count := range counts {
		if count > best || (count == best && playerID < winner) {
			winner = playerID
			best = count
		}
	}

	return &winner
}

// VoteCounts tallies parent votes per player.
func VoteCounts(votes map[int64]int64) map[int64]int {
	counts := make(map[int64]int, len(votes))
	for _, playerID := range votes {
		counts[playerID]++
	}
	return counts
}

// Standing is one leaderboard row.
type Standing struct {
	PlayerID     int64 `json:"player_id"`
	CoachAwards  int   `json:"coach_awards"`
	ParentAwards int   `json:"parent_awards"`
	Total        int   `json:"total"`
}

// Leaderboard counts coach and parent awards across completed fixtures. A
// player winning both awards in one fixture scores two.
func Leaderboard(fixtures []fixture.Fixture) []Standing {
	byPlayer := make(map[int64]*Standing)
	row := func(playerID int64) *Standing {
		item, ok := byPlayer[playerID]
		if !ok {
			item = &Standing{PlayerID: playerID}
			byPlayer[playerID] = item
		}
		return item
	}

	for _, f := range fixtures {
		if !f.IsCompleted() {
			continue
		}
		if f.CoachMotm != nil {
			item := row(*f.CoachMotm)
			item.CoachAwards++
			item.Total++
		}
		if f.ParentMotm != nil {
			item := row(*f.ParentMotm)
			item.ParentAwards++
			item.Total++
		}
	}

	out := make([]Standing, 0, len(byPlayer))
	for _, item := range byPlayer {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].PlayerID < out[j].PlayerID
	})

	return out
}
