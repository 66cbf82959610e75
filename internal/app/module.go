package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/fatflowers/prayerbook/internal/app/api/server"
	"github.com/fatflowers/prayerbook/internal/app/service/generation"
	"github.com/fatflowers/prayerbook/internal/app/service/installation"
	"github.com/fatflowers/prayerbook/internal/app/service/persist"
	"github.com/fatflowers/prayerbook/internal/app/service/purchase"
	"github.com/fatflowers/prayerbook/internal/platform/kv"
	"github.com/fatflowers/prayerbook/pkg/clock"
	"github.com/fatflowers/prayerbook/pkg/config"
	"github.com/fatflowers/prayerbook/pkg/logger"
	"github.com/fatflowers/prayerbook/pkg/metrics"
)

const (
	DefaultStartTimeout = 15 * time.Second
	// room for the HTTP server to finish in-flight generations and for the
	// write queue to drain
	DefaultStopTimeout = 150 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	clock.Module,
	metrics.Module,
	kv.Module,
	persist.Module,
	installation.Module,
	generation.Module,
	purchase.Module,
	server.Module,
)
