package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/user"
	"github.com/riskibarqy/club-manager/internal/platform/cache"
	idgen "github.com/riskibarqy/club-manager/internal/platform/id"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

// Session is an issued bearer token and the user it belongs to.
type Session struct {
	Token     string
	Principal user.Principal
	ExpiresAt time.Time
}

type SessionService struct {
	store    *ClubStore
	sessions *cache.Store[user.Principal]
	tokens   idgen.Generator
	ttl      time.Duration
	now      func() time.Time
	logger   *logging.Logger
}

func NewSessionService(store *ClubStore, sessions *cache.Store[user.Principal], tokens idgen.Generator, ttl time.Duration, logger *logging.Logger) *SessionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SessionService{
		store:    store,
		sessions: sessions,
		tokens:   tokens,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *SessionService) Login(ctx context.Context, username, password string) (Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Login")
	defer span.End()

	if strings.TrimSpace(username) == "" || password == "" {
		return Session{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	state, err := s.store.Snapshot(ctx)
	if err != nil {
		return Session{}, err
	}

	account, ok := user.FindByCredentials(state.Users, username, password)
	if !ok {
		s.logger.WarnContext(ctx, "login rejected", "username", username)
		return Session{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, err := s.tokens.NewID()
	if err != nil {
		return Session{}, fmt.Errorf("generate session token: %w", err)
	}

	principal := account.Principal()
	s.sessions.Set(ctx, token, principal)

	session := Session{Token: token, Principal: principal}
	if s.ttl > 0 {
		session.ExpiresAt = s.now().Add(s.ttl).UTC()
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", principal.UserID, "role", string(principal.Role))
	return session, nil
}

// Authenticate resolves a bearer token to the logged-in user.
func (s *SessionService) Authenticate(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: missing session token", ErrUnauthorized)
	}

	principal, ok := s.sessions.Get(ctx, token)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: session expired or unknown", ErrUnauthorized)
	}
	return principal, nil
}

// Logout ends the session. The live match and all club data are unaffected.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if !s.sessions.Delete(ctx, strings.TrimSpace(token)) {
		return fmt.Errorf("%w: session expired or unknown", ErrUnauthorized)
	}
	s.logger.InfoContext(ctx, "user logged out")
	return nil
}
