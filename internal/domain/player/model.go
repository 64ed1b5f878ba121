package player

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnknownName is rendered for ids that no longer resolve to a roster entry.
const UnknownName = "Unknown"

var ErrInvalidPlayer = errors.New("invalid player")

// ShirtNumber is a squad number. It decodes from either a JSON number or a
// numeric string because older snapshots stored raw form values.
type ShirtNumber int

func (n *ShirtNumber) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*n = 0
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		unquoted, err := strconv.Unquote(string(raw))
		if err != nil {
			return fmt.Errorf("decode shirt number: %w", err)
		}
		raw = []byte(strings.TrimSpace(unquoted))
		if len(raw) == 0 {
			*n = 0
			return nil
		}
	}

	// Form inputs may have stored "7.0" or "1e1"; fractions are truncated.
	value, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return fmt.Errorf("decode shirt number %q: %w", string(raw), err)
	}
	if math.IsNaN(value) || math.Abs(value) > math.MaxInt32 {
		return fmt.Errorf("decode shirt number %q: out of range", string(raw))
	}
	*n = ShirtNumber(math.Trunc(value))
	return nil
}

// Player is a member of the club roster.
type Player struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Position string      `json:"position"`
	Number   ShirtNumber `json:"number"`
	Active   bool        `json:"active"`
}

// NewPlayer carries the fields required to register a player.
type NewPlayer struct {
	Name     string
	Position string
	Number   *int
}

func (in NewPlayer) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPlayer)
	}
	if strings.TrimSpace(in.Position) == "" {
		return fmt.Errorf("%w: position is required", ErrInvalidPlayer)
	}
	if in.Number == nil {
		return fmt.Errorf("%w: number is required", ErrInvalidPlayer)
	}
	if *in.Number < 0 {
		return fmt.Errorf("%w: number must be >= 0", ErrInvalidPlayer)
	}

	return nil
}

// Update is a partial change; nil fields are left untouched.
type Update struct {
	Name     *string
	Position *string
	Number   *int
	Active   *bool
}

func (u Update) IsEmpty() bool {
	return u.Name == nil && u.Position == nil && u.Number == nil && u.Active == nil
}

func (u Update) Apply(p Player) Player {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Position != nil {
		p.Position = *u.Position
	}
	if u.Number != nil {
		p.Number = ShirtNumber(*u.Number)
	}
	if u.Active != nil {
		p.Active = *u.Active
	}
	return p
}

func FindByID(players []Player, id int64) (Player, bool) {
	for _, p := range players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// NameOf resolves a player id for display, tolerating deleted players.
func NameOf(players []Player, id int64) string {
	if p, ok := FindByID(players, id); ok {
		return p.Name
	}
	return UnknownName
}

func Active(players []Player) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}
