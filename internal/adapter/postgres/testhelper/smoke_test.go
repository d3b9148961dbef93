//go:build integration

package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	ns := UniqueNamespace("smoke")
	SeedEntry(t, pool, ns, "vendors", `[]`)

	var value string
	err := pool.QueryRow(
		context.Background(),
		`SELECT value FROM kv_entries WHERE namespace = $1 AND key = $2`,
		ns, "vendors",
	).Scan(&value)
	if err != nil {
		t.Fatalf("select seeded entry: %v", err)
	}
	if value != `[]` {
		t.Errorf("value = %q, want %q", value, `[]`)
	}
}
