package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mw "github.com/fatflowers/prayerbook/internal/app/api/middleware"
	"github.com/fatflowers/prayerbook/internal/app/service/generation"
	"github.com/fatflowers/prayerbook/internal/app/service/installation"
	"github.com/fatflowers/prayerbook/internal/app/service/purchase"
	"github.com/fatflowers/prayerbook/pkg/clock"
	"github.com/fatflowers/prayerbook/pkg/config"
)

type InstallationRoutesDeps struct {
	Registry *installation.Registry
	Gen      *generation.Service
	Purchase *purchase.Service
	Clock    clock.Clock
	Config   *config.Config
	Logger   *zap.SugaredLogger
}

// RegisterInstallationRoutes mounts every per-installation endpoint under
// r/installations/:installation_id.
func RegisterInstallationRoutes(r gin.IRouter, d InstallationRoutesDeps) {
	g := r.Group("/installations/:" + mw.InstallationParam)
	g.Use(mw.InstallationMiddleware(d.Registry, d.Logger))

	limiter := mw.NewRateLimiter(d.Config.RateLimit.GenerationPerMinute, d.Config.RateLimit.Burst)
	RegisterEntitlementRoutes(g, d.Purchase, d.Config.AllowDirectUpgrade)
	RegisterPrayerRoutes(g, d.Gen, d.Clock, limiter)
	RegisterFolderRoutes(g)
	RegisterProfileRoutes(g)
}
