package purchase

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/platform/apple/apple_iap"
	"github.com/fatflowers/prayerbook/pkg/config"
)

func newTransactionSource(cfg *config.Config, l *zap.SugaredLogger) TransactionSource {
	if !cfg.AppleIAP.Enabled() {
		l.Warnw("apple iap credentials not configured, purchase verification is disabled")
		return nil
	}
	return apple_iap.NewClient(cfg.AppleIAP)
}

var Module = fx.Options(
	fx.Provide(newTransactionSource, NewService),
)
