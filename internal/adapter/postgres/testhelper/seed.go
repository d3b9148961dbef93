package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueNamespace returns a namespace no other test uses, so tests sharing
// the container never see each other's rows.
func UniqueNamespace(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedEntry writes a kv_entries row directly, bypassing the store.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, namespace, key, value string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO kv_entries (namespace, key, value) VALUES ($1, $2, $3)`,
		namespace, key, value,
	)
	if err != nil {
		t.Fatalf("testhelper: seed entry %s/%s: %v", namespace, key, err)
	}
}
