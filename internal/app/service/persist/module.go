package persist

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/platform/kv"
	"github.com/fatflowers/prayerbook/pkg/config"
	"github.com/fatflowers/prayerbook/pkg/metrics"
)

func newFromConfig(lc fx.Lifecycle, store kv.Store, l *zap.SugaredLogger, m *metrics.Business, cfg *config.Config) *Writer {
	w := NewWriter(store, l, m, Options{
		Timeout:   cfg.Storage.WriteTimeout,
		Retries:   cfg.Storage.WriteRetries,
		RetryBase: cfg.Storage.RetryBase,
	})
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			l.Infow("draining snapshot writes", "pending", w.Pending())
			return w.Close(ctx)
		},
	})
	return w
}

var Module = fx.Options(
	fx.Provide(newFromConfig),
)
