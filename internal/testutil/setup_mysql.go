package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"card_ledger/internal/repository"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
	"gorm.io/gorm"
)

// SetupTestMySQL starts a MySQL container and returns a migrated GORM
// repository with a teardown. Skipped like SetupTestDB.
func SetupTestMySQL(t *testing.T) (*repository.CardGormRepository, *gorm.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MySQL integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	mysqlC, err := tcmysql.Run(ctx,
		"mysql:8.0.36",
		tcmysql.WithDatabase("cards"),
		tcmysql.WithUsername("cards"),
		tcmysql.WithPassword("secret"),
	)
	require.NoError(t, err)

	dsn, err := mysqlC.ConnectionString(ctx, "parseTime=true", "loc=UTC")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := repository.OpenMySQL(repository.MySQLOptions{
		DSN:             dsn,
		MaxOpenConns:    32,
		LogLevel:        "silent",
		ConnectAttempts: 20,
		RetryInterval:   time.Second,
	}, logger)
	require.NoError(t, err)

	repo := repository.NewCardGormRepository(db, logger)
	require.NoError(t, repo.Migrate(ctx))

	return repo, db, func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		mysqlC.Terminate(ctx)
	}
}
