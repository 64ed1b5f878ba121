package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/riskibarqy/club-manager/internal/config"
	"github.com/riskibarqy/club-manager/internal/domain/access"
	"github.com/riskibarqy/club-manager/internal/domain/user"
	"github.com/riskibarqy/club-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-manager/internal/infrastructure/snapshot"
	"github.com/riskibarqy/club-manager/internal/interfaces/httpapi"
	"github.com/riskibarqy/club-manager/internal/platform/cache"
	idgen "github.com/riskibarqy/club-manager/internal/platform/id"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/riskibarqy/club-manager/internal/platform/resilience"
	"github.com/riskibarqy/club-manager/internal/usecase"
)

const sessionSweepInterval = 5 * time.Minute

// App is the wired service: HTTP server, club store and the snapshot
// backends behind it.
type App struct {
	Server *http.Server

	store     *usecase.ClubStore
	persister *snapshot.Persister
	sessions  *cache.Store[user.Principal]
	closers   []namedCloser
	logger    *logging.Logger

	stopSweep context.CancelFunc
	sweepDone sync.WaitGroup
}

type namedCloser struct {
	name  string
	close func() error
}

// New opens the configured snapshot stores, loads (or seeds) the club state
// and builds the HTTP server. Nothing listens until the caller starts Server.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{logger: logger}

	slots, err := a.openSlots(ctx, cfg)
	if err != nil {
		a.closeBackends()
		return nil, err
	}
	replicated, err := snapshot.NewReplicated(slots...)
	if err != nil {
		a.closeBackends()
		return nil, err
	}
	repo := snapshot.NewRepository(replicated, cfg.StoreKey)

	breakerLogger := logger.Named("persist_breaker")
	breaker := resilience.NewCircuitBreakerFromConfig(cfg.PersistCircuit,
		resilience.OnStateChange(func(from, to resilience.CircuitState) {
			breakerLogger.Warn("snapshot circuit state changed", "from", from, "to", to)
		}),
	)

	persister, err := snapshot.NewPersister(repo, breaker, logger, snapshot.PersisterConfig{
		Mode:        snapshot.ParseMode(cfg.PersistMode),
		SaveTimeout: cfg.PersistTimeout,
	})
	if err != nil {
		a.closeBackends()
		return nil, err
	}
	a.persister = persister

	a.store = usecase.NewClubStore(repo, persister, logger, usecase.ClubStoreOptions{
		SeedOnEmpty: cfg.SeedOnEmpty,
		Seed:        memory.SeedState,
	})
	if err := a.store.Load(ctx); err != nil {
		a.closeBackends()
		return nil, fmt.Errorf("load club state: %w", err)
	}

	policy := access.NewPolicy(access.Options{AdminCanVoteCoach: cfg.MotmAdminCoachVote})

	var cacheOpts []cache.Option
	if cfg.SessionSliding {
		cacheOpts = append(cacheOpts, cache.WithSlidingExpiry())
	}
	a.sessions = cache.NewStore[user.Principal](cfg.SessionTTL, cacheOpts...)

	sessionSvc := usecase.NewSessionService(a.store, a.sessions, idgen.NewRandomGenerator(0), cfg.SessionTTL, logger)
	handler := httpapi.NewHandler(httpapi.Services{
		Sessions:  sessionSvc,
		Roster:    usecase.NewRosterService(a.store, policy, logger),
		Fixtures:  usecase.NewFixtureService(a.store, policy, logger),
		Live:      usecase.NewLiveMatchService(a.store, policy, logger),
		Motm:      usecase.NewMotmService(a.store, policy, logger),
		Dashboard: usecase.NewDashboardService(a.store),
	}, logger)
	router := httpapi.NewRouter(handler, sessionSvc, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	sweepCtx, cancel := context.WithCancel(context.Background())
	a.stopSweep = cancel
	a.sweepDone.Add(1)
	go a.sweepSessions(sweepCtx, sessionSweepInterval)

	logger.Info("club store ready",
		"stores", cfg.StoreDrivers,
		"key", repo.Key(),
		"persist_mode", persister.Mode(),
	)

	return a, nil
}

// Close stops background work, flushes pending snapshots and releases the
// storage handles. It is safe to call on a partially built App.
func (a *App) Close(ctx context.Context) error {
	if a.stopSweep != nil {
		a.stopSweep()
		a.sweepDone.Wait()
	}

	var errs []error
	if a.persister != nil {
		if err := a.persister.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flush snapshots: %w", err))
		}
	}
	if err := a.closeBackends(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (a *App) sweepSessions(ctx context.Context, every time.Duration) {
	defer a.sweepDone.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := a.sessions.Sweep(ctx); removed > 0 {
				a.logger.Debug("expired sessions removed", "count", removed)
			}
		}
	}
}

func (a *App) closeBackends() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", c.name, err))
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
