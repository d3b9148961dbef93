//go:build integration

package app

import (
	"testing"
	"time"

	"github.com/heartmarshall/restaurant-admin/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/restaurant-admin/internal/config"
)

func TestOpenStorage_Postgres(t *testing.T) {
	assertSurvivesReopen(t, &config.Config{
		Storage: config.StorageConfig{
			Driver:    config.DriverPostgres,
			Namespace: testhelper.UniqueNamespace("app"),
		},
		Database: config.DatabaseConfig{
			DSN:             testhelper.DSN(t),
			MaxConns:        2,
			MinConns:        0,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: time.Minute,
		},
	})
}
