package entitlement

import (
	"github.com/fatflowers/prayerbook/internal/models"
	"github.com/fatflowers/prayerbook/pkg/types"
)

// NormalizeUsage applies the lazy day rollover: a record for any day other
// than today is replaced by an empty record for today.
func NormalizeUsage(u models.DailyUsage, today string) models.DailyUsage {
	if u.Date != today {
		return models.FreshUsage(today)
	}
	return u
}

// FeatureUsage is the per-feature view returned by RemainingUsage.
type FeatureUsage struct {
	Unlimited bool `json:"unlimited"`
	UsedToday bool `json:"used_today"`
	Available bool `json:"available"`
}

type Remaining map[types.Feature]FeatureUsage

func remaining(u models.DailyUsage, premium bool) Remaining {
	r := make(Remaining, len(types.GatedFeatures))
	for _, f := range types.GatedFeatures {
		if premium {
			r[f] = FeatureUsage{Unlimited: true, Available: true}
			continue
		}
		used := u.Used(f)
		r[f] = FeatureUsage{UsedToday: used, Available: !used}
	}
	return r
}
