package apple_iap

import (
	"github.com/awa/go-iap/appstore/api"

	"github.com/fatflowers/prayerbook/pkg/config"
)

// NewClient builds an App Store Server API client. Sandbox is used unless
// the config is marked as production.
func NewClient(cfg config.AppleIAPConfig) *api.StoreClient {
	return api.NewStoreClient(&api.StoreConfig{
		KeyContent: []byte(cfg.KeyContent),
		KeyID:      cfg.KeyID,
		BundleID:   cfg.BundleID,
		Issuer:     cfg.Issuer,
		Sandbox:    !cfg.IsProd,
	})
}
