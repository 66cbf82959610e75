package prayerstore

import (
	"fmt"
	"slices"
	"time"

	"github.com/fatflowers/prayerbook/internal/models"
	"github.com/fatflowers/prayerbook/pkg/types"
)

// ProfilePatch lists the profile fields a client may change. Nil fields are
// left as they are. An empty ProfileImageURI clears the image.
type ProfilePatch struct {
	Name                   *string                      `json:"name,omitempty"`
	PreferredLanguage      *types.Language              `json:"preferredLanguage,omitempty"`
	HasCompletedOnboarding *bool                        `json:"hasCompletedOnboarding,omitempty"`
	ProfileImageURI        *string                      `json:"profileImageUri,omitempty"`
	NotificationSettings   *models.NotificationSettings `json:"notificationSettings,omitempty"`
}

// apply merges p into profile. profile is not modified when p is invalid.
func (p ProfilePatch) apply(profile models.UserProfile) (models.UserProfile, error) {
	if p.PreferredLanguage != nil && !p.PreferredLanguage.Valid() {
		return profile, ErrInvalidLanguage
	}
	var ns *models.NotificationSettings
	if p.NotificationSettings != nil {
		n, err := NormalizeNotificationSettings(*p.NotificationSettings)
		if err != nil {
			return profile, err
		}
		ns = &n
	}

	out := profile.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.PreferredLanguage != nil {
		out.PreferredLanguage = *p.PreferredLanguage
	}
	if p.HasCompletedOnboarding != nil {
		out.HasCompletedOnboarding = *p.HasCompletedOnboarding
	}
	if p.ProfileImageURI != nil {
		if *p.ProfileImageURI == "" {
			out.ProfileImageURI = nil
		} else {
			uri := *p.ProfileImageURI
			out.ProfileImageURI = &uri
		}
	}
	if ns != nil {
		out.NotificationSettings = ns
	}
	return out, nil
}

// NormalizeNotificationSettings validates weekday ids (0 = Sunday .. 6) and a
// 24h HH:MM time, returning the days sorted without duplicates.
func NormalizeNotificationSettings(ns models.NotificationSettings) (models.NotificationSettings, error) {
	days := slices.Clone(ns.Days)
	for _, d := range days {
		if d < 0 || d > 6 {
			return ns, fmt.Errorf("%w: weekday %d out of range", ErrInvalidNotificationSettings, d)
		}
	}
	slices.Sort(days)
	ns.Days = slices.Compact(days)
	if ns.Days == nil {
		ns.Days = []int{}
	}

	if len(ns.Time) != len("15:04") {
		return ns, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidNotificationSettings, ns.Time)
	}
	if _, err := time.Parse("15:04", ns.Time); err != nil {
		return ns, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidNotificationSettings, ns.Time)
	}
	return ns, nil
}
