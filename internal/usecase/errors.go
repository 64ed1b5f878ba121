package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/club-manager/internal/domain/access"
	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/domain/fixture"
	"github.com/riskibarqy/club-manager/internal/domain/player"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// categorize attaches the use-case category matching a domain error so callers
// can branch on either one.
func categorize(err error) error {
	if err == nil {
		return nil
	}

	var category error
	switch {
	case errors.Is(err, player.ErrInvalidPlayer),
		errors.Is(err, fixture.ErrInvalidFixture),
		errors.Is(err, club.ErrInvalidSide),
		errors.Is(err, club.ErrInvalidScore):
		category = ErrInvalidInput
	case errors.Is(err, club.ErrPlayerNotFound),
		errors.Is(err, club.ErrFixtureNotFound),
		errors.Is(err, club.ErrUserNotFound):
		category = ErrNotFound
	case errors.Is(err, club.ErrLiveMatchActive),
		errors.Is(err, club.ErrNoLiveMatch),
		errors.Is(err, club.ErrFixtureLive),
		errors.Is(err, club.ErrFixtureNotUpcoming),
		errors.Is(err, club.ErrFixtureNotCompleted):
		category = ErrConflict
	case errors.Is(err, access.ErrForbidden),
		errors.Is(err, club.ErrVoterNotParent):
		category = ErrForbidden
	default:
		return err
	}

	return fmt.Errorf("%w: %w", category, err)
}
