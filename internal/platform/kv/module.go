package kv

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/platform/db"
	"github.com/fatflowers/prayerbook/internal/platform/sqlite"
	"github.com/fatflowers/prayerbook/pkg/config"
)

// NewStore selects the backend named by storage.driver.
func NewStore(lc fx.Lifecycle, l *zap.SugaredLogger, cfg *config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		gdb, err := db.Open(lc, l, cfg)
		if err != nil {
			return nil, err
		}
		return NewGormStore(gdb), nil
	case config.StorageDriverSQLite, "":
		sdb, err := sqlite.OpenWithLifecycle(lc, l, cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(sdb), nil
	case config.StorageDriverMemory:
		l.Warnw("using in-memory storage, state is lost on restart")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

var Module = fx.Options(
	fx.Provide(NewStore),
)
