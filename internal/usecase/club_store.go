package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/riskibarqy/club-manager/internal/platform/resilience"
)

// SnapshotPersister receives every committed snapshot.
type SnapshotPersister interface {
	Persist(ctx context.Context, state club.State) (uint64, error)
}

type ClubStoreOptions struct {
	SeedOnEmpty bool
	Seed        func() club.State
}

// ClubStore owns the current club snapshot. Mutations are applied one at a
// time; a failed reducer leaves the snapshot untouched.
type ClubStore struct {
	repo      club.Repository
	persister SnapshotPersister
	logger    *logging.Logger
	opts      ClubStoreOptions

	mu      sync.RWMutex
	state   club.State
	loaded  bool
	hydrate resilience.SingleFlight[club.State]
}

func NewClubStore(repo club.Repository, persister SnapshotPersister, logger *logging.Logger, opts ClubStoreOptions) *ClubStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &ClubStore{
		repo:      repo,
		persister: persister,
		logger:    logger,
		opts:      opts,
	}
}

// Load reads the stored snapshot once. Concurrent callers share one read.
func (s *ClubStore) Load(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubStore.Load")
	defer span.End()

	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	_, err, _ := s.hydrate.Do("club", func() (club.State, error) {
		s.mu.RLock()
		if s.loaded {
			state := s.state
			s.mu.RUnlock()
			return state, nil
		}
		s.mu.RUnlock()

		state, found, err := s.repo.Load(ctx)
		if err != nil {
			return club.State{}, fmt.Errorf("%w: load club snapshot: %w", ErrDependencyUnavailable, err)
		}
		if !found {
			state = s.emptyState()
			if s.opts.SeedOnEmpty {
				s.logger.InfoContext(ctx, "club store empty, seeding defaults",
					"players", len(state.Players),
					"fixtures", len(state.Fixtures),
				)
				if _, err := s.persister.Persist(ctx, state); err != nil {
					s.logger.WarnContext(ctx, "persist seed snapshot failed", "error", err)
				}
			}
		}

		s.mu.Lock()
		s.state = state
		s.loaded = true
		s.mu.Unlock()
		return state, nil
	})
	return err
}

// Snapshot returns a private copy of the current state.
func (s *ClubStore) Snapshot(ctx context.Context) (club.State, error) {
	if err := s.Load(ctx); err != nil {
		return club.State{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone(), nil
}

func (s *ClubStore) emptyState() club.State {
	if s.opts.SeedOnEmpty && s.opts.Seed != nil {
		return s.opts.Seed()
	}
	return club.NewState(nil, nil, nil)
}

// commit hands next to the persister and swaps it in once accepted. A failed
// persist leaves the previous state in place. Callers hold s.mu.
func (s *ClubStore) commit(ctx context.Context, op string, next club.State) error {
	version, err := s.persister.Persist(ctx, next)
	if err != nil {
		s.logger.ErrorContext(ctx, "persist club snapshot failed, mutation rolled back", "operation", op, "version", version, "error", err)
		return fmt.Errorf("%w: persist after %s: %w", ErrDependencyUnavailable, op, err)
	}
	s.state = next
	return nil
}

// mutate runs reducer against the current snapshot under the store lock and
// commits the result when it succeeds.
func mutate[T any](ctx context.Context, s *ClubStore, op string, reducer func(club.State) (club.State, T, error)) (T, error) {
	var zero T
	if err := s.Load(ctx); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, result, err := reducer(s.state)
	if err != nil {
		s.logger.WarnContext(ctx, "club operation rejected", "operation", op, "error", err)
		return zero, categorize(err)
	}
	if err := s.commit(ctx, op, next); err != nil {
		return result, err
	}
	return result, nil
}
