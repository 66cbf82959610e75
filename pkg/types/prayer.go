package types

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageSpanish
}

type PrayerType string

const (
	PrayerTypeMyself PrayerType = "myself"
	PrayerTypeSend   PrayerType = "send"
)

func (t PrayerType) Valid() bool {
	return t == PrayerTypeMyself || t == PrayerTypeSend
}

// Feature maps a prayer type to the allowance it consumes. Praying for
// yourself and sending a prayer are metered independently.
func (t PrayerType) Feature() Feature {
	if t == PrayerTypeSend {
		return FeatureOtherPrayerGeneration
	}
	return FeatureSelfPrayerGeneration
}
