package models

import (
	"time"

	"github.com/fatflowers/prayerbook/pkg/types"
)

// Subscription is the installation's paid entitlement. ExpiresAt is only
// meaningful for paid tiers.
type Subscription struct {
	Tier      types.SubscriptionTier `json:"tier"`
	ExpiresAt *time.Time             `json:"expiresAt,omitempty"`
}

func DefaultSubscription() Subscription {
	return Subscription{Tier: types.SubscriptionTierFree}
}

// Active reports whether the subscription is a paid tier whose term ends
// strictly after now. A paid tier without an expiry is treated as lapsed.
func (s Subscription) Active(now time.Time) bool {
	return s.Tier.IsPaid() && s.ExpiresAt != nil && now.Before(*s.ExpiresAt)
}
