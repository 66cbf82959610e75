package types

type SubscriptionTier string

const (
	SubscriptionTierFree    SubscriptionTier = "free"
	SubscriptionTierMonthly SubscriptionTier = "monthly"
	SubscriptionTierAnnual  SubscriptionTier = "annual"
)

// IsPaid reports whether the tier carries a paid term.
func (t SubscriptionTier) IsPaid() bool {
	return t == SubscriptionTierMonthly || t == SubscriptionTierAnnual
}

type Feature string

const (
	FeatureSelfPrayerGeneration  Feature = "self_prayer_generation"
	FeatureOtherPrayerGeneration Feature = "other_prayer_generation"
	FeatureCardDownload          Feature = "card_download"
	FeatureAudioListen           Feature = "audio_listen"
	// FeaturePrayerSharing is never gated.
	FeaturePrayerSharing Feature = "prayer_sharing"
)

// GatedFeatures lists the features that consume a daily allowance.
var GatedFeatures = []Feature{
	FeatureSelfPrayerGeneration,
	FeatureOtherPrayerGeneration,
	FeatureCardDownload,
	FeatureAudioListen,
}

func (f Feature) Valid() bool {
	switch f {
	case FeatureSelfPrayerGeneration, FeatureOtherPrayerGeneration, FeatureCardDownload, FeatureAudioListen, FeaturePrayerSharing:
		return true
	}
	return false
}
