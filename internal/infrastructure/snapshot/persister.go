package snapshot

import (
	"context"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/riskibarqy/club-manager/internal/platform/resilience"
)

type Mode string

const (
	ModeSync  Mode = "sync"
	ModeAsync Mode = "async"
)

func ParseMode(value string) Mode {
	if strings.EqualFold(strings.TrimSpace(value), string(ModeAsync)) {
		return ModeAsync
	}
	return ModeSync
}

type PersisterConfig struct {
	Mode          Mode
	SaveTimeout   time.Duration
	// RetryDelay is the first wait before an async save that failed is
	// attempted again. It doubles per failure up to RetryMaxDelay.
	RetryDelay    time.Duration
	RetryMaxDelay time.Duration
}

// Persister hands snapshots to the repository. In sync mode each Persist call
// saves inline. In async mode calls return immediately and a single worker
// saves the newest pending snapshot, skipping versions superseded meanwhile.
// A failed async save stays pending and is retried with backoff.
type Persister struct {
	repo          club.Repository
	breaker       *resilience.CircuitBreaker
	logger        *logging.Logger
	mode          Mode
	saveTimeout   time.Duration
	retryBase     time.Duration
	retryMaxDelay time.Duration
	worker        *ants.Pool

	mu         sync.Mutex
	pending    *pendingSnapshot
	version    uint64
	saved      uint64
	scheduled  bool
	closed     bool
	retryDelay time.Duration
	retryTimer *time.Timer
	inflight   sync.WaitGroup
}

type pendingSnapshot struct {
	version uint64
	state   club.State
}

func NewPersister(repo club.Repository, breaker *resilience.CircuitBreaker, logger *logging.Logger, cfg PersisterConfig) (*Persister, error) {
	if repo == nil {
		return nil, crerr.New("persister needs a repository")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = 5 * time.Second
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeSync
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 500 * time.Millisecond
	}
	if cfg.RetryMaxDelay < cfg.RetryDelay {
		cfg.RetryMaxDelay = max(30*time.Second, cfg.RetryDelay)
	}

	p := &Persister{
		repo:          repo,
		breaker:       breaker,
		logger:        logger.Named("persister"),
		mode:          cfg.Mode,
		saveTimeout:   cfg.SaveTimeout,
		retryBase:     cfg.RetryDelay,
		retryMaxDelay: cfg.RetryMaxDelay,
		retryDelay:    cfg.RetryDelay,
	}
	if cfg.Mode == ModeAsync {
		worker, err := ants.NewPool(1, ants.WithNonblocking(false))
		if err != nil {
			return nil, crerr.Wrap(err, "create persister worker pool")
		}
		p.worker = worker
	}
	return p, nil
}

func (p *Persister) Mode() Mode {
	return p.mode
}

// Persist records state as the newest snapshot. The returned version grows by
// one on every call.
func (p *Persister) Persist(ctx context.Context, state club.State) (uint64, error) {
	p.mu.Lock()
	p.version++
	version := p.version

	if p.mode != ModeAsync {
		p.mu.Unlock()
		if err := p.save(ctx, state); err != nil {
			return version, err
		}
		p.markSaved(version)
		return version, nil
	}

	p.pending = &pendingSnapshot{version: version, state: state}
	if p.scheduled {
		p.mu.Unlock()
		return version, nil
	}
	p.scheduled = true
	p.inflight.Add(1)
	p.mu.Unlock()

	if err := p.worker.Submit(p.drain); err != nil {
		p.mu.Lock()
		p.scheduled = false
		p.mu.Unlock()
		p.inflight.Done()
		p.logger.WarnContext(ctx, "persister worker unavailable, saving inline", "version", version, "error", err)
		if err := p.Flush(ctx); err != nil {
			// The caller gets the error and drops this state, so it must not
			// be saved later either.
			p.discard(version)
			return version, err
		}
	}
	return version, nil
}

// Flush blocks until every recorded snapshot has been saved or ctx ends.
func (p *Persister) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return crerr.Wrap(ctx.Err(), "wait for pending snapshot")
	}

	p.mu.Lock()
	next := p.pending
	p.pending = nil
	p.mu.Unlock()
	if next == nil {
		return nil
	}

	if err := p.save(ctx, next.state); err != nil {
		p.requeue(next)
		return err
	}
	p.markSaved(next.version)
	return nil
}

// SavedVersion is the newest version known to be durable.
func (p *Persister) SavedVersion() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saved
}

// Close cancels any pending retry, flushes outstanding work and stops the
// worker.
func (p *Persister) Close(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	if p.retryTimer != nil {
		p.retryTimer.Stop()
		p.retryTimer = nil
	}
	p.mu.Unlock()

	err := p.Flush(ctx)
	if p.worker != nil {
		p.worker.Release()
	}
	return err
}

func (p *Persister) drain() {
	defer p.inflight.Done()

	for {
		p.mu.Lock()
		next := p.pending
		p.pending = nil
		if next == nil {
			p.scheduled = false
			p.mu.Unlock()
			return
		}
		p.mu.Unlock()

		if err := p.save(context.Background(), next.state); err != nil {
			p.mu.Lock()
			p.scheduled = false
			p.mu.Unlock()
			p.requeue(next)
			p.scheduleRetry()
			return
		}
		p.markSaved(next.version)
	}
}

// scheduleRetry arms a single timer that resubmits the drain. The delay
// doubles on every consecutive failure and resets once a save succeeds.
func (p *Persister) scheduleRetry() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.retryTimer != nil {
		return
	}
	delay := p.retryDelay
	p.retryDelay = min(p.retryDelay*2, p.retryMaxDelay)
	p.retryTimer = time.AfterFunc(delay, p.retry)
	p.logger.Warn("snapshot save will be retried", "delay", delay.String())
}

func (p *Persister) retry() {
	p.mu.Lock()
	p.retryTimer = nil
	if p.closed || p.scheduled || p.pending == nil {
		p.mu.Unlock()
		return
	}
	p.scheduled = true
	p.inflight.Add(1)
	p.mu.Unlock()

	if err := p.worker.Submit(p.drain); err != nil {
		p.mu.Lock()
		p.scheduled = false
		p.mu.Unlock()
		p.inflight.Done()
		p.logger.Warn("snapshot retry not submitted", "error", err)
	}
}

func (p *Persister) save(ctx context.Context, state club.State) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.saveTimeout)
	defer cancel()

	err := p.breaker.Execute(func() error {
		return p.repo.Save(ctx, state)
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "save snapshot failed", "mode", string(p.mode), "breaker", string(p.breaker.State()), "error", err)
		return crerr.Wrap(err, "save snapshot")
	}
	return nil
}

// discard drops the pending snapshot when it is still the given version.
func (p *Persister) discard(version uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending != nil && p.pending.version == version {
		p.pending = nil
	}
}

// requeue puts a failed snapshot back unless a newer one already arrived.
func (p *Persister) requeue(failed *pendingSnapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == nil || p.pending.version < failed.version {
		p.pending = failed
	}
}

func (p *Persister) markSaved(version uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if version > p.saved {
		p.saved = version
	}
	p.retryDelay = p.retryBase
}
