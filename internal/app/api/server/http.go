package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/docs"
	"github.com/fatflowers/prayerbook/internal/app/api/handlers"
	mw "github.com/fatflowers/prayerbook/internal/app/api/middleware"
	"github.com/fatflowers/prayerbook/internal/app/service/generation"
	"github.com/fatflowers/prayerbook/internal/app/service/installation"
	"github.com/fatflowers/prayerbook/internal/app/service/persist"
	"github.com/fatflowers/prayerbook/internal/app/service/purchase"
	"github.com/fatflowers/prayerbook/pkg/clock"
	cfgpkg "github.com/fatflowers/prayerbook/pkg/config"
	"github.com/fatflowers/prayerbook/pkg/metrics"
)

func newEngine(cfg *cfgpkg.Config) *gin.Engine {
	if cfg.Env == cfgpkg.EnvProd {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	// Add request tracing middleware only; request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware(), mw.CORSMiddleware(cfg.Server.CORSOrigins))
	return r
}

type routeParams struct {
	fx.In

	Engine     *gin.Engine
	Log        *zap.SugaredLogger
	Cfg        *cfgpkg.Config
	Registry   *installation.Registry
	Writer     *persist.Writer
	Gen        *generation.Service
	Purchase   *purchase.Service
	Clock      clock.Clock
	Registerer prometheus.Registerer
}

func registerRoutes(p routeParams) {
	r, log, cfg := p.Engine, p.Log, p.Cfg

	// Prometheus metrics
	if cfg.MetricsAddr != "" {
		prom := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			Subsystem:  metrics.Subsystem,
			Logger:     log,
			Registerer: p.Registerer,
		})
		prom.SetListenAddress(cfg.MetricsAddr)
		prom.Use(r)

		log.Infow("metrics started", "addr", cfg.MetricsAddr)
	}
	// Public group: request logger + access log
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware(log))
	handlers.RegisterHealthRoutes(pub, p.Registry, p.Writer)
	// Swagger UI
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware(log))
	handlers.RegisterInstallationRoutes(apiV1, handlers.InstallationRoutesDeps{
		Registry: p.Registry,
		Gen:      p.Gen,
		Purchase: p.Purchase,
		Clock:    p.Clock,
		Config:   cfg,
		Logger:   log,
	})
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			// generation requests can take a minute
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
