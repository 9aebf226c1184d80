package store

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/oqrlabs/revenue-manager/internal/dependency"
)

// Config defines configurations to connect the analytics database. The
// database is owned and populated externally; this service only reads it.
type Config struct {
	DSN                string `mapstructure:"dsn"`
	MaxOpenConnections int    `mapstructure:"max_open_connections"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections"`
}

// MYSQLStore implements methods to access the MYSQL analytics database.
type MYSQLStore struct {
	db dependency.DB
	ts time.Time

	close func() error
}

// New connects to the database and returns a new MYSQLStore object.
func New(ctx context.Context, cfg Config) (*MYSQLStore, error) {
	d, err := sqlx.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("couldn't open database: %w", err)
	}

	if cfg.MaxOpenConnections > 0 {
		d.SetMaxOpenConns(cfg.MaxOpenConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		d.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	d.SetConnMaxLifetime(2 * time.Minute)
	d.SetConnMaxIdleTime(30 * time.Second)

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := d.PingContext(pingCtx); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	slog.Default().InfoContext(ctx, "connected to analytics database")

	return &MYSQLStore{
		db:    d,
		close: d.Close,
	}, nil
}

func (ms *MYSQLStore) DB() dependency.DB {
	return ms.db
}

// Now returns current time for the store.
func (ms *MYSQLStore) Now() time.Time {
	if ms.ts.IsZero() {
		return time.Now()
	}
	return ms.ts
}

// Close closes the underlying database connection pool.
func (ms *MYSQLStore) Close() {
	if ms.close != nil {
		if err := ms.close(); err != nil {
			slog.Default().Error("can't close database connection",
				slog.String("err", err.Error()),
			)
		}
	}
}
