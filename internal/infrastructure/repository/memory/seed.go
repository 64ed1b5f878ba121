package memory

import (
	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/domain/fixture"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/user"
)

func SeedUsers() []user.User {
	return []user.User{
		{ID: 1, Username: "admin", Password: "admin123", Role: user.RoleAdmin, DisplayName: "Admin User"},
		{ID: 2, Username: "coach", Password: "coach123", Role: user.RoleCoach, DisplayName: "Head Coach"},
		{ID: 3, Username: "parent1", Password: "parent123", Role: user.RoleParent, DisplayName: "Parent Smith"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Tommy Wilson", Position: "Forward", Number: 9, Active: true},
		{ID: 2, Name: "Jake Foster", Position: "Midfielder", Number: 7, Active: true},
		{ID: 3, Name: "Ben Clarke", Position: "Defender", Number: 4, Active: true},
	}
}

func SeedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{
			ID:          1,
			Opponent:    "Riverside FC",
			Date:        "2025-10-12",
			Time:        "10:00",
			Venue:       fixture.VenueHome,
			Scorers:     []int64{},
			Status:      fixture.StatusUpcoming,
			ParentVotes: map[int64]int64{},
		},
	}
}

// SeedState is the club a fresh install starts with.
func SeedState() club.State {
	return club.NewState(SeedUsers(), SeedPlayers(), SeedFixtures())
}
