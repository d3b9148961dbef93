package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrSchemaMissing means kv_entries does not exist; Migrate was not run.
var ErrSchemaMissing = errors.New("kv_entries table missing")

// mapError wraps pgx/pgconn errors with the operation and key.
// context.DeadlineExceeded and context.Canceled pass through unchanged.
func mapError(err error, op, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", op, key, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42P01": // undefined_table
			return fmt.Errorf("%s %s: %w", op, key, ErrSchemaMissing)
		}
	}

	return fmt.Errorf("%s %s: %w", op, key, err)
}
