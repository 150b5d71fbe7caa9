package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okramarenko/meteostation/internal/config"
	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/migrations"
)

// DB wraps the raw database handle together with the driver name so that
// migrations and error classification can stay driver-aware.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewConnect opens a database connection for the configured driver.
// "sqlite3" points DSN at a local file (created if missing), "pgx" expects a
// PostgreSQL connection string.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	case "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown database driver: %s", cfg.Driver)
	}
}

// Migrate applies all embedded migrations. The embedded DDL is written for
// the sqlite dialect; on the postgres driver the schema is provisioned
// externally and migration is skipped.
func (db *DB) Migrate() error {
	if db.driver != "sqlite3" {
		db.logger.Debug().Str("driver", db.driver).Msg("schema managed externally, skipping embedded migrations")
		return nil
	}

	return migrations.Migrate(db.DB, db.driver)
}
