package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/config"
)

// newTestPostgresStore connects to the database named by GA_TEST_DB_HOST and friends.
// The test is skipped when no test database is configured.
func newTestPostgresStore(t *testing.T) *PostgresRecordStore {
	t.Helper()

	host := os.Getenv("GA_TEST_DB_HOST")
	if host == "" {
		t.Skip("GA_TEST_DB_HOST not set, skipping PostgreSQL integration test")
	}

	cfg, err := database.NewConfig(config.DatabaseConfig{
		Host:          host,
		Port:          getEnvOrDefault("GA_TEST_DB_PORT", "5432"),
		Username:      getEnvOrDefault("GA_TEST_DB_USERNAME", "postgres"),
		Password:      getEnvOrDefault("GA_TEST_DB_PASSWORD", "postgres"),
		Database:      getEnvOrDefault("GA_TEST_DB_NAME", "gold_advisor_test"),
		SSLMode:       "disable",
		MaxOpenConns:  5,
		MaxIdleConns:  2,
		QueryTimeout:  5 * time.Second,
		RetryAttempts: 1,
	}, "silent")
	require.NoError(t, err)

	log := logger.NewNoopLogger()
	tp := timeprovider.NewRealTimeProvider()
	manager := database.NewManager(cfg, log, tp)

	db, err := manager.Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	require.NoError(t, manager.Migrate(context.Background()))
	require.NoError(t, db.Exec("TRUNCATE gold_transactions, user_profiles").Error)

	return NewPostgresRecordStore(db, tp, manager.QueryTimeout(), log)
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestPostgresRecordStore_Integration(t *testing.T) {
	store := newTestPostgresStore(t)
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	// Profiles
	require.NoError(t, store.UpsertUserProfile(ctx, &entity.UserProfile{UserID: "user123", DisplayName: "First", LastUpdated: baseTime}))
	require.NoError(t, store.UpsertUserProfile(ctx, &entity.UserProfile{UserID: "user123", DisplayName: "Second", LastUpdated: baseTime}))
	profile, err := store.GetUserProfile(ctx, "user123")
	require.NoError(t, err)
	assert.Equal(t, "Second", profile.DisplayName)

	_, err = store.GetUserProfile(ctx, "ghost")
	assert.True(t, errors.Is(err, errs.ErrUserNotFound))

	// Transactions
	require.NoError(t, store.AppendTransaction(ctx, newRecord("user123", "TXN-00000001", 0)))
	require.NoError(t, store.AppendTransaction(ctx, newRecord("user123", "TXN-00000002", time.Minute)))

	records, err := store.ListTransactionsByUser(ctx, "user123")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "TXN-00000001", records[0].TransactionID)
	assert.True(t, records[0].GoldWeightGrams.Equal(newRecord("", "", 0).GoldWeightGrams))

	exists, err := store.TransactionExists(ctx, "TXN-00000002")
	require.NoError(t, err)
	assert.True(t, exists)

	err = store.AppendTransaction(ctx, newRecord("user123", "TXN-00000002", 0))
	assert.True(t, errs.IsPersistenceError(err))

	_, err = store.ListTransactionsByUser(ctx, "ghost")
	assert.True(t, errors.Is(err, errs.ErrUserNotFound))
}
