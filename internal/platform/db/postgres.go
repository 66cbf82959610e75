package db

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fatflowers/prayerbook/internal/models"
	cfgpkg "github.com/fatflowers/prayerbook/pkg/config"
	gormzap "github.com/fatflowers/prayerbook/pkg/gormlog"
)

func NewDB(l *zap.SugaredLogger, cfg *cfgpkg.Config) (*gorm.DB, error) {
	if cfg.Storage.DSN == "" {
		l.Error("database DSN is empty")
		return nil, gorm.ErrInvalidDB
	}
	db, err := gorm.Open(postgres.Open(cfg.Storage.DSN), &gorm.Config{
		Logger:                 gormzap.New(l),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		l.Errorf("failed to connect database: %v", err)
		return nil, err
	}
	l.Infow("connected to postgres via DSN")
	return db, nil
}

// Open connects, migrates and registers the pool for shutdown.
func Open(lc fx.Lifecycle, l *zap.SugaredLogger, cfg *cfgpkg.Config) (*gorm.DB, error) {
	gdb, err := NewDB(l, cfg)
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(l, gdb); err != nil {
		return nil, err
	}
	registerDBClose(lc, l, gdb)
	return gdb, nil
}

// AutoMigrate runs GORM migrations on startup
func AutoMigrate(l *zap.SugaredLogger, db *gorm.DB) error {
	if err := db.AutoMigrate(&models.KVRecord{}); err != nil {
		l.Errorf("automigrate failed: %v", err)
		return err
	}
	l.Infow("automigrate completed")
	return nil
}

// registerDBClose ensures the underlying *sql.DB is closed on shutdown
func registerDBClose(lc fx.Lifecycle, l *zap.SugaredLogger, gdb *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				l.Warnw("gorm: get sql.DB failed", "err", err)
				return nil
			}
			l.Infow("closing postgres connection pool")
			return sqlDB.Close()
		},
	})
}
