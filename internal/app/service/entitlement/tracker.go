// Package entitlement decides whether an installation may use a gated
// feature today and records that it did.
package entitlement

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/app/service/persist"
	"github.com/fatflowers/prayerbook/internal/models"
	"github.com/fatflowers/prayerbook/internal/platform/kv"
	"github.com/fatflowers/prayerbook/pkg/clock"
	"github.com/fatflowers/prayerbook/pkg/metrics"
	"github.com/fatflowers/prayerbook/pkg/types"
)

const (
	SourceDirect   = "direct"
	SourceAppStore = "app_store"
)

// Snapshotter durably stores JSON snapshots without blocking the caller.
type Snapshotter interface {
	EnqueueJSON(key string, v any)
}

type Deps struct {
	Store   kv.Store
	Writer  Snapshotter
	Clock   clock.Clock
	Logger  *zap.SugaredLogger
	Metrics *metrics.Business
}

// Tracker owns one installation's subscription and daily usage. In-memory
// state is authoritative; every change is handed to the writer while the
// lock is held so snapshots reach storage in mutation order.
type Tracker struct {
	mu      sync.Mutex
	clock   clock.Clock
	writer  Snapshotter
	l       *zap.SugaredLogger
	metrics *metrics.Business

	subKey   string
	usageKey string

	sub   models.Subscription
	usage models.DailyUsage
	// usageStored is false until a usage record exists in storage; rollovers
	// of an unstored default are kept in memory only.
	usageStored bool
	inFlight    map[types.Feature]bool
}

// Status is the read model served to clients.
type Status struct {
	Subscription models.Subscription `json:"subscription"`
	Usage        models.DailyUsage   `json:"usage"`
	IsPremium    bool                `json:"is_premium"`
	Remaining    Remaining           `json:"remaining"`
}

// Load restores the tracker for installationID. Unreadable records fall back
// to the free tier with no usage.
func Load(ctx context.Context, installationID string, d Deps) *Tracker {
	t := &Tracker{
		clock:    d.Clock,
		writer:   d.Writer,
		l:        d.Logger.With("component", "entitlement"),
		metrics:  d.Metrics,
		subKey:   models.StorageKey(installationID, models.KeySubscription),
		usageKey: models.StorageKey(installationID, models.KeyDailyUsage),
		sub:      models.DefaultSubscription(),
		inFlight: map[types.Feature]bool{},
	}
	if sub, ok := persist.LoadJSON[models.Subscription](ctx, d.Store, d.Logger, t.subKey); ok {
		t.sub = sub
	}
	today := clock.Today(t.clock)
	usage, ok := persist.LoadJSON[models.DailyUsage](ctx, d.Store, d.Logger, t.usageKey)
	t.usage = NormalizeUsage(usage, today)
	t.usageStored = ok
	if ok && usage != t.usage {
		t.l.Debugw("daily usage reset", "stored_date", usage.Date, "today", today)
		t.writer.EnqueueJSON(t.usageKey, t.usage)
	}
	return t
}

// IsPremium reports whether a paid term is running right now.
func (t *Tracker) IsPremium() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.premiumLocked()
}

func (t *Tracker) premiumLocked() bool {
	return t.sub.Active(t.clock.Now())
}

// CanUse reports whether f may proceed now. Sharing is always allowed;
// unknown features never are.
func (t *Tracker) CanUse(f types.Feature) bool {
	if f == types.FeaturePrayerSharing {
		return true
	}
	if !f.Valid() {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.premiumLocked() {
		return true
	}
	t.normalizeLocked()
	return !t.usage.Used(f)
}

// Gate is CanUse as an error, counting denials.
func (t *Tracker) Gate(f types.Feature) error {
	if !f.Valid() {
		return ErrUnknownFeature
	}
	if t.CanUse(f) {
		return nil
	}
	t.metrics.QuotaDenied(string(f))
	return ErrQuotaExhausted
}

// RecordUse marks f as used today. Recording on a stale day starts a fresh
// record with only f set. Premium use and sharing leave the flags alone.
func (t *Tracker) RecordUse(f types.Feature) error {
	if !f.Valid() {
		return ErrUnknownFeature
	}
	if f == types.FeaturePrayerSharing {
		t.l.Debugw("prayer sharing has no quota")
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.recordUseLocked(f)
	return nil
}

func (t *Tracker) recordUseLocked(f types.Feature) {
	if f == types.FeaturePrayerSharing {
		return
	}
	if t.premiumLocked() {
		t.metrics.UsageRecorded(string(f), string(t.sub.Tier))
		return
	}
	t.usage = NormalizeUsage(t.usage, clock.Today(t.clock)).WithUsed(f)
	t.usageStored = true
	t.writer.EnqueueJSON(t.usageKey, t.usage)
	t.metrics.UsageRecorded(string(f), string(types.SubscriptionTierFree))
	t.l.Infow("usage recorded", "feature", f, "date", t.usage.Date)
}

// Upgrade starts a fresh paid term from now, replacing any existing one.
func (t *Tracker) Upgrade(tier types.SubscriptionTier) (models.Subscription, error) {
	return t.UpgradeFrom(SourceDirect, tier)
}

// UpgradeFrom is Upgrade with the origin of the upgrade recorded in metrics.
func (t *Tracker) UpgradeFrom(source string, tier types.SubscriptionTier) (models.Subscription, error) {
	if !tier.IsPaid() {
		return models.Subscription{}, ErrInvalidTier
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	expiresAt := termEnd(t.clock.Now(), tier)
	t.sub = models.Subscription{Tier: tier, ExpiresAt: &expiresAt}
	t.writer.EnqueueJSON(t.subKey, t.sub)
	t.metrics.Upgraded(string(tier), source)
	t.l.Infow("subscription upgraded", "tier", tier, "expires_at", expiresAt, "source", source)
	return t.cloneSubLocked(), nil
}

func termEnd(now time.Time, tier types.SubscriptionTier) time.Time {
	if tier == types.SubscriptionTierAnnual {
		return now.AddDate(1, 0, 0)
	}
	return now.AddDate(0, 1, 0)
}

// RemainingUsage reports each gated feature as unlimited while premium,
// otherwise today's flags.
func (t *Tracker) RemainingUsage() Remaining {
	t.mu.Lock()
	defer t.mu.Unlock()
	premium := t.premiumLocked()
	if !premium {
		t.normalizeLocked()
	}
	return remaining(t.usage, premium)
}

func (t *Tracker) Snapshot() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.normalizeLocked()
	premium := t.premiumLocked()
	return Status{
		Subscription: t.cloneSubLocked(),
		Usage:        t.usage,
		IsPremium:    premium,
		Remaining:    remaining(t.usage, premium),
	}
}

func (t *Tracker) Subscription() models.Subscription {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cloneSubLocked()
}

func (t *Tracker) cloneSubLocked() models.Subscription {
	s := t.sub
	if s.ExpiresAt != nil {
		exp := *s.ExpiresAt
		s.ExpiresAt = &exp
	}
	return s
}

func (t *Tracker) normalizeLocked() {
	n := NormalizeUsage(t.usage, clock.Today(t.clock))
	if n != t.usage {
		t.l.Debugw("daily usage reset", "stored_date", t.usage.Date, "today", n.Date)
		t.usage = n
		if t.usageStored {
			t.writer.EnqueueJSON(t.usageKey, t.usage)
		}
	}
}
