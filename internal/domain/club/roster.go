package club

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/club-manager/internal/domain/player"
)

// AddPlayer appends a new active player with a fresh id.
func AddPlayer(s State, in player.NewPlayer) (State, player.Player, error) {
	if err := in.Validate(); err != nil {
		return s, player.Player{}, err
	}

	next := s.Clone()
	next.Sequences.Player++
	item := player.Player{
		ID:       next.Sequences.Player,
		Name:     strings.TrimSpace(in.Name),
		Position: strings.TrimSpace(in.Position),
		Number:   player.ShirtNumber(*in.Number),
		Active:   true,
	}
	next.Players = append(next.Players, item)

	return next, item, nil
}

// UpdatePlayer merges the set fields of u into the player with id.
func UpdatePlayer(s State, id int64, u player.Update) (State, player.Player, error) {
	idx := -1
	for i, p := range s.Players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, player.Player{}, fmt.Errorf("%w: player=%d", ErrPlayerNotFound, id)
	}

	next := s.Clone()
	next.Players[idx] = u.Apply(next.Players[idx])

	return next, next.Players[idx], nil
}

// DeletePlayer removes the player. Fixtures keep any references to the id.
func DeletePlayer(s State, id int64) (State, error) {
	if _, ok := s.Player(id); !ok {
		return s, fmt.Errorf("%w: player=%d", ErrPlayerNotFound, id)
	}

	next := s.Clone()
	players := make([]player.Player, 0, len(next.Players))
	for _, p := range next.Players {
		if p.ID == id {
			continue
		}
		players = append(players, p)
	}
	next.Players = players

	return next, nil
}
