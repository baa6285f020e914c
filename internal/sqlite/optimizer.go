package sqlite

import (
	"context"
	"log/slog"
	"time"

	"github.com/myrjola/detectivequest/internal/errors"
)

// Optimize runs PRAGMA optimize. Short-lived connections should run it before closing.
// See https://www.sqlite.org/pragma.html#pragma_optimize.
func (db *Database) Optimize(ctx context.Context) error {
	start := time.Now()
	if _, err := db.ReadWrite.ExecContext(ctx, "PRAGMA optimize;"); err != nil {
		return errors.Wrap(err, "optimize database")
	}
	db.logger.LogAttrs(ctx, slog.LevelDebug, "optimized database", slog.Duration("duration", time.Since(start)))
	return nil
}

// Close optimizes the database and closes both connection pools.
func (db *Database) Close(ctx context.Context) error {
	if err := db.Optimize(ctx); err != nil {
		db.logger.LogAttrs(ctx, slog.LevelWarn, "failed to optimize database", errors.SlogError(err))
	}
	return errors.Join(
		errors.Wrap(db.ReadOnly.Close(), "close read database"),
		errors.Wrap(db.ReadWrite.Close(), "close read-write database"),
	)
}
