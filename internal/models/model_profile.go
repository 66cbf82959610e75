package models

import (
	"slices"

	"github.com/fatflowers/prayerbook/pkg/types"
)

type NotificationSettings struct {
	Enabled bool `json:"enabled"`
	// Days are weekday ids, 0 = Sunday.
	Days []int `json:"days"`
	// Time is a 24h "HH:MM" time of day.
	Time string `json:"time"`
}

// UserProfile is the per-installation singleton profile.
type UserProfile struct {
	Name                   string                `json:"name"`
	PreferredLanguage      types.Language        `json:"preferredLanguage"`
	HasCompletedOnboarding bool                  `json:"hasCompletedOnboarding"`
	ProfileImageURI        *string               `json:"profileImageUri,omitempty"`
	NotificationSettings   *NotificationSettings `json:"notificationSettings,omitempty"`
}

func DefaultProfile() UserProfile {
	return UserProfile{PreferredLanguage: types.LanguageEnglish}
}

func (p UserProfile) Clone() UserProfile {
	if p.ProfileImageURI != nil {
		uri := *p.ProfileImageURI
		p.ProfileImageURI = &uri
	}
	if p.NotificationSettings != nil {
		ns := *p.NotificationSettings
		ns.Days = slices.Clone(ns.Days)
		p.NotificationSettings = &ns
	}
	return p
}
