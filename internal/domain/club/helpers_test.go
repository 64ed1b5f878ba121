package club

import (
	"github.com/riskibarqy/club-manager/internal/domain/fixture"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/user"
)

func testState() State {
	return NewState(
		[]user.User{
			{ID: 1, Username: "admin", Password: "admin123", Role: user.RoleAdmin, DisplayName: "Admin User"},
			{ID: 2, Username: "coach", Password: "coach123", Role: user.RoleCoach, DisplayName: "Head Coach"},
			{ID: 3, Username: "parent1", Password: "parent123", Role: user.RoleParent, DisplayName: "Parent Smith"},
			{ID: 4, Username: "parent2", Password: "parent456", Role: user.RoleParent, DisplayName: "Parent Jones"},
			{ID: 5, Username: "parent3", Password: "parent789", Role: user.RoleParent, DisplayName: "Parent Brown"},
		},
		[]player.Player{
			{ID: 1, Name: "Tommy Wilson", Position: "Forward", Number: 9, Active: true},
			{ID: 2, Name: "Jake Foster", Position: "Midfielder", Number: 7, Active: true},
			{ID: 3, Name: "Ben Clarke", Position: "Defender", Number: 4, Active: true},
		},
		[]fixture.Fixture{
			{ID: 1, Opponent: "Riverside FC", Date: "2025-10-12", Time: "10:00", Venue: fixture.VenueHome, Status: fixture.StatusUpcoming},
			{ID: 2, Opponent: "Hillside United", Date: "2025-10-19", Time: "11:00", Venue: fixture.VenueAway, Status: fixture.StatusUpcoming},
		},
	)
}

func completedState(fixtureIDs ...int64) State {
	s := testState()
	for _, id := range fixtureIDs {
		var err error
		s, _, err = StartLiveMatch(s, id)
		if err != nil {
			panic(err)
		}
		s, _, err = EndLiveMatch(s)
		if err != nil {
			panic(err)
		}
	}
	return s
}

func intRef(v int) *int {
	return &v
}

func strRef(v string) *string {
	return &v
}
