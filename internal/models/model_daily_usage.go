package models

import "github.com/fatflowers/prayerbook/pkg/types"

// DailyUsage holds one calendar day of per-feature usage flags. Flags are
// only meaningful while Date is the current day.
type DailyUsage struct {
	Date                  string `json:"date"`
	SelfPrayerUsedToday   bool   `json:"selfPrayerUsedToday"`
	OtherPrayerUsedToday  bool   `json:"otherPrayerUsedToday"`
	CardDownloadUsedToday bool   `json:"cardDownloadUsedToday"`
	AudioListenUsedToday  bool   `json:"audioListenUsedToday"`
}

// FreshUsage returns an empty record for date.
func FreshUsage(date string) DailyUsage {
	return DailyUsage{Date: date}
}

// Used returns the flag for a gated feature. Ungated features are never used up.
func (u DailyUsage) Used(f types.Feature) bool {
	switch f {
	case types.FeatureSelfPrayerGeneration:
		return u.SelfPrayerUsedToday
	case types.FeatureOtherPrayerGeneration:
		return u.OtherPrayerUsedToday
	case types.FeatureCardDownload:
		return u.CardDownloadUsedToday
	case types.FeatureAudioListen:
		return u.AudioListenUsedToday
	}
	return false
}

// WithUsed returns a copy with the flag for f set.
func (u DailyUsage) WithUsed(f types.Feature) DailyUsage {
	switch f {
	case types.FeatureSelfPrayerGeneration:
		u.SelfPrayerUsedToday = true
	case types.FeatureOtherPrayerGeneration:
		u.OtherPrayerUsedToday = true
	case types.FeatureCardDownload:
		u.CardDownloadUsedToday = true
	case types.FeatureAudioListen:
		u.AudioListenUsedToday = true
	}
	return u
}
