package entitlement

import (
	"github.com/fatflowers/prayerbook/pkg/types"
)

// Reservation holds today's free use of one feature while the gated work
// runs. The first of Commit or Release settles it; later calls do nothing.
type Reservation struct {
	t       *Tracker
	feature types.Feature
	held    bool
	settled bool
}

// Reserve claims f for the caller. A free installation gets at most one
// outstanding reservation per feature, and only while f is unused today.
// Premium installations and sharing are never held.
func (t *Tracker) Reserve(f types.Feature) (*Reservation, error) {
	if !f.Valid() {
		return nil, ErrUnknownFeature
	}
	r := &Reservation{t: t, feature: f}
	if f == types.FeaturePrayerSharing {
		return r, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.premiumLocked() {
		return r, nil
	}
	t.normalizeLocked()
	if t.usage.Used(f) || t.inFlight[f] {
		t.metrics.QuotaDenied(string(f))
		return nil, ErrQuotaExhausted
	}
	t.inFlight[f] = true
	r.held = true
	return r, nil
}

// Commit records the use and frees the hold.
func (r *Reservation) Commit() {
	t := r.t
	t.mu.Lock()
	defer t.mu.Unlock()
	if r.settled {
		return
	}
	r.settled = true
	if r.held {
		delete(t.inFlight, r.feature)
	}
	t.recordUseLocked(r.feature)
}

// Release frees the hold without using the allowance.
func (r *Reservation) Release() {
	t := r.t
	t.mu.Lock()
	defer t.mu.Unlock()
	if r.settled {
		return
	}
	r.settled = true
	if r.held {
		delete(t.inFlight, r.feature)
		t.l.Debugw("reservation released", "feature", r.feature)
	}
}
