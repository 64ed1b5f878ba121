package fixture

import (
	"errors"
	"fmt"
	"strings"
)

const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
)

const (
	VenueHome = "Home"
	VenueAway = "Away"
)

const (
	SideHome = "home"
	SideAway = "away"
)

var ErrInvalidFixture = errors.New("invalid fixture")

// Fixture represents one scheduled or played match against an opponent.
type Fixture struct {
	ID          int64           `json:"id"`
	Opponent    string          `json:"opponent"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Venue       string          `json:"venue"`
	HomeScore   *int            `json:"homeScore"`
	AwayScore   *int            `json:"awayScore"`
	Scorers     []int64         `json:"scorers"`
	Status      string          `json:"status"`
	CoachMotm   *int64          `json:"coachMotm"`
	ParentMotm  *int64          `json:"parentMotm"`
	ParentVotes map[int64]int64 `json:"parentVotes"`
}

// Clone returns a copy that shares no slices, maps or pointers with f.
func (f Fixture) Clone() Fixture {
	out := f
	out.HomeScore = cloneInt(f.HomeScore)
	out.AwayScore = cloneInt(f.AwayScore)
	out.CoachMotm = cloneInt64(f.CoachMotm)
	out.ParentMotm = cloneInt64(f.ParentMotm)
	out.Scorers = make([]int64, len(f.Scorers))
	copy(out.Scorers, f.Scorers)
	out.ParentVotes = make(map[int64]int64, len(f.ParentVotes))
	for voter, playerID := range f.ParentVotes {
		out.ParentVotes[voter] = playerID
	}
	return out
}

func (f Fixture) IsUpcoming() bool {
	return NormalizeStatus(f.Status) == StatusUpcoming
}

func (f Fixture) IsCompleted() bool {
	return NormalizeStatus(f.Status) == StatusCompleted
}

// NewFixture carries the fields required to schedule a fixture.
type NewFixture struct {
	Opponent string
	Date     string
	Time     string
	Venue    string
}

func (in NewFixture) Validate() error {
	if strings.TrimSpace(in.Opponent) == "" {
		return fmt.Errorf("%w: opponent is required", ErrInvalidFixture)
	}
	if strings.TrimSpace(in.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidFixture)
	}
	if strings.TrimSpace(in.Time) == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidFixture)
	}
	if _, ok := NormalizeVenue(in.Venue); !ok {
		return fmt.Errorf("%w: venue must be %s or %s", ErrInvalidFixture, VenueHome, VenueAway)
	}

	return nil
}

// Update is a partial change to the schedule fields of a fixture.
type Update struct {
	Opponent *string
	Date     *string
	Time     *string
	Venue    *string
}

func (u Update) IsEmpty() bool {
	return u.Opponent == nil && u.Date == nil && u.Time == nil && u.Venue == nil
}

func (u Update) Validate() error {
	if u.Venue != nil {
		if _, ok := NormalizeVenue(*u.Venue); !ok {
			return fmt.Errorf("%w: venue must be %s or %s", ErrInvalidFixture, VenueHome, VenueAway)
		}
	}
	return nil
}

func (u Update) Apply(f Fixture) Fixture {
	if u.Opponent != nil {
		f.Opponent = *u.Opponent
	}
	if u.Date != nil {
		f.Date = *u.Date
	}
	if u.Time != nil {
		f.Time = *u.Time
	}
	if u.Venue != nil {
		f.Venue, _ = NormalizeVenue(*u.Venue)
	}
	return f
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusUpcoming
	}
	return status
}

// NormalizeVenue maps free-form input onto Home or Away. Empty means Home.
func NormalizeVenue(value string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "home":
		return VenueHome, true
	case "away":
		return VenueAway, true
	default:
		return "", false
	}
}

func NormalizeSide(value string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case SideHome, "homescore":
		return SideHome, true
	case SideAway, "awayscore":
		return SideAway, true
	default:
		return "", false
	}
}

func FindByID(fixtures []Fixture, id int64) (Fixture, int, bool) {
	for i, f := range fixtures {
		if f.ID == id {
			return f, i, true
		}
	}
	return Fixture{}, -1, false
}

// Completed returns completed fixtures, most recently added first.
func Completed(fixtures []Fixture) []Fixture {
	out := make([]Fixture, 0, len(fixtures))
	for i := len(fixtures) - 1; i >= 0; i-- {
		if fixtures[i].IsCompleted() {
			out = append(out, fixtures[i])
		}
	}
	return out
}

// NextUpcoming returns the first upcoming fixture in schedule list order.
func NextUpcoming(fixtures []Fixture) (Fixture, bool) {
	for _, f := range fixtures {
		if f.IsUpcoming() {
			return f, true
		}
	}
	return Fixture{}, false
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
