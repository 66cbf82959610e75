package types

type PaymentProvider string

const (
	PaymentProviderApple  PaymentProvider = "apple"
	PaymentProviderGoogle PaymentProvider = "google"
)

// Plan maps a store product to the subscription tier it unlocks.
type Plan struct {
	Tier           SubscriptionTier `json:"tier" mapstructure:"tier"`
	ProviderID     PaymentProvider  `json:"provider_id" mapstructure:"provider_id"`
	ProviderItemID string           `json:"provider_item_id" mapstructure:"provider_item_id"`
}
