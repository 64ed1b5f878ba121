package club

import "errors"

var (
	ErrPlayerNotFound      = errors.New("player not found")
	ErrFixtureNotFound     = errors.New("fixture not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrLiveMatchActive     = errors.New("a live match is already in progress")
	ErrNoLiveMatch         = errors.New("no live match in progress")
	ErrFixtureLive         = errors.New("fixture is currently live")
	ErrFixtureNotUpcoming  = errors.New("fixture is not upcoming")
	ErrFixtureNotCompleted = errors.New("fixture is not completed")
	ErrInvalidSide         = errors.New("score side must be home or away")
	ErrInvalidScore        = errors.New("score must be >= 0")
	ErrVoterNotParent      = errors.New("voter is not a parent")
)
