// Package sqlite opens the embedded on-device database and applies its schema.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/platform/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

func RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	goose.SetLogger(goose.NopLogger())
	return goose.UpContext(ctx, db, ".")
}

// Open opens dsn and migrates it to the latest schema.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// modernc serialises writers per connection; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return db, nil
}

// OpenWithLifecycle is Open plus a close hook on shutdown.
func OpenWithLifecycle(lc fx.Lifecycle, l *zap.SugaredLogger, dsn string) (*sql.DB, error) {
	db, err := Open(context.Background(), dsn)
	if err != nil {
		l.Errorf("failed to open sqlite: %v", err)
		return nil, err
	}
	l.Infow("opened sqlite store", "dsn", dsn)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			l.Infow("closing sqlite store")
			return db.Close()
		},
	})
	return db, nil
}
