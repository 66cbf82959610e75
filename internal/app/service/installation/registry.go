// Package installation keeps one entitlement tracker and prayer store per
// client installation, loaded from storage on first use.
package installation

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/app/service/entitlement"
	"github.com/fatflowers/prayerbook/internal/app/service/persist"
	"github.com/fatflowers/prayerbook/internal/app/service/prayerstore"
	"github.com/fatflowers/prayerbook/internal/platform/kv"
	"github.com/fatflowers/prayerbook/pkg/clock"
	"github.com/fatflowers/prayerbook/pkg/metrics"
)

var ErrInvalidInstallationID = errors.New("installation: id must be 1-64 characters of A-Z a-z 0-9 _ -")

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

type Session struct {
	ID      string
	Tracker *entitlement.Tracker
	Store   *prayerstore.Store
}

// DefaultIdleTTL is how long a session stays cached after its last use.
const DefaultIdleTTL = 30 * time.Minute

type entry struct {
	once     sync.Once
	session  *Session
	lastSeen time.Time
}

type Registry struct {
	store   kv.Store
	writer  *persist.Writer
	clock   clock.Clock
	l       *zap.SugaredLogger
	metrics *metrics.Business
	idleTTL time.Duration

	mu      sync.Mutex
	entries map[string]*entry
}

func NewRegistry(store kv.Store, w *persist.Writer, c clock.Clock, l *zap.SugaredLogger, m *metrics.Business) *Registry {
	return &Registry{
		store:   store,
		writer:  w,
		clock:   c,
		l:       l,
		metrics: m,
		idleTTL: DefaultIdleTTL,
		entries: map[string]*entry{},
	}
}

// Session returns the cached session for id, loading it on first access.
// Concurrent first calls for the same id load once.
func (r *Registry) Session(ctx context.Context, id string) (*Session, error) {
	if !ValidID(id) {
		return nil, ErrInvalidInstallationID
	}

	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		e = &entry{}
		r.entries[id] = e
	}
	e.lastSeen = r.clock.Now()
	r.mu.Unlock()

	e.once.Do(func() {
		// a cancelled request must not turn a readable record into defaults
		e.session = r.load(context.WithoutCancel(ctx), id)
	})
	return e.session, nil
}

func (r *Registry) load(ctx context.Context, id string) *Session {
	l := r.l.With("installation_id", id)
	s := &Session{
		ID: id,
		Tracker: entitlement.Load(ctx, id, entitlement.Deps{
			Store:   r.store,
			Writer:  r.writer,
			Clock:   r.clock,
			Logger:  l,
			Metrics: r.metrics,
		}),
		Store: prayerstore.Load(ctx, id, prayerstore.Deps{
			Store:  r.store,
			Writer: r.writer,
			Clock:  r.clock,
			Logger: l,
		}),
	}
	l.Infow("installation session loaded")
	return s
}

// Sweep drops sessions unused for longer than the idle TTL, after the
// writes they queued have been applied. A session touched again before
// the drop is kept. It returns the number of sessions dropped.
func (r *Registry) Sweep(ctx context.Context) int {
	cutoff := r.clock.Now().Add(-r.idleTTL)
	idle := r.idleSince(cutoff)
	if len(idle) == 0 {
		return 0
	}
	if err := r.writer.Flush(ctx); err != nil {
		r.l.Warnw("idle sweep skipped, pending writes not flushed", "idle", len(idle), "err", err)
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, id := range idle {
		if e, ok := r.entries[id]; ok && e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			n++
		}
	}
	r.l.Infow("idle installation sessions evicted", "evicted", n, "cached", len(r.entries))
	return n
}

func (r *Registry) idleSince(cutoff time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (r *Registry) sweepLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

func runSweeper(lc fx.Lifecycle, r *Registry) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				r.sweepLoop(ctx, r.idleTTL/6)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

// Len reports the number of cached sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

var Module = fx.Options(
	fx.Provide(NewRegistry),
	fx.Invoke(runSweeper),
)
