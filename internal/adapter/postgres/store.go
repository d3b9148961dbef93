package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store keeps one kv_entries row per key, scoped by namespace.
type Store struct {
	pool      *pgxpool.Pool
	namespace string
	psql      sq.StatementBuilderType
}

// NewStore creates a key-value store over the pool. The kv_entries table
// must exist (see Migrate).
func NewStore(pool *pgxpool.Pool, namespace string) *Store {
	return &Store{
		pool:      pool,
		namespace: namespace,
		psql:      sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.psql.Select("value").
		From("kv_entries").
		Where(sq.Eq{"namespace": s.namespace, "key": key}).
		ToSql()
	if err != nil {
		return "", false, mapError(err, "build get", key)
	}

	var value string
	err = s.pool.QueryRow(ctx, query, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, mapError(err, "get", key)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	query, args, err := s.psql.Insert("kv_entries").
		Columns("namespace", "key", "value").
		Values(s.namespace, key, value).
		Suffix("ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return mapError(err, "build set", key)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, "set", key)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the underlying pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
