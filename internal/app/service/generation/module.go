package generation

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/pkg/config"
)

func newGenerator(cfg *config.Config, l *zap.SugaredLogger) Generator {
	if cfg.Generation.Endpoint == "" {
		l.Warnw("generation endpoint not configured, prayer generation is disabled")
		return disabledGenerator{}
	}
	return NewHTTPGenerator(cfg.Generation, &http.Client{}, l)
}

var Module = fx.Options(
	fx.Provide(newGenerator, NewService),
)
