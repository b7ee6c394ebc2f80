package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/model"
)

const postgresBackend = "postgres"

// PostgresRecordStore implements RecordStore using GORM
type PostgresRecordStore struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	queryTimeout    coreport.Duration
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPostgresRecordStore creates a new PostgresRecordStore instance
func NewPostgresRecordStore(
	db *gorm.DB,
	timeProvider coreport.TimeProvider,
	queryTimeout coreport.Duration,
	logger coreport.Logger,
) *PostgresRecordStore {
	return &PostgresRecordStore{
		db:              db,
		timeProvider:    timeProvider,
		queryTimeout:    queryTimeout,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Name identifies the store in logs
func (r *PostgresRecordStore) Name() string {
	return postgresBackend
}

func (r *PostgresRecordStore) session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return r.db.WithContext(ctx), func() {}
	}
	ctx, cancel := r.timeProvider.WithTimeout(ctx, r.queryTimeout)
	return r.db.WithContext(ctx), cancel
}

// handleDatabaseError standardizes database error handling
func (r *PostgresRecordStore) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	logFields := map[string]any{"operation": operation, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	if r.errorClassifier.IsConnectionError(err) {
		logFields["connection_error"] = true
	}
	r.logger.Error("Database error", logFields)

	return r.errorClassifier.Wrap(postgresBackend, operation, err)
}

// Ping probes the database connection
func (r *PostgresRecordStore) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return r.errorClassifier.Wrap(postgresBackend, "ping", err)
	}

	if r.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = r.timeProvider.WithTimeout(ctx, r.queryTimeout)
		defer cancel()
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return r.errorClassifier.Wrap(postgresBackend, "ping", err)
	}
	return nil
}

// UpsertUserProfile inserts the profile or overwrites the existing row
func (r *PostgresRecordStore) UpsertUserProfile(ctx context.Context, profile *entity.UserProfile) error {
	if profile == nil || strings.TrimSpace(profile.UserID) == "" {
		return errs.ErrInvalidUserID
	}

	db, cancel := r.session(ctx)
	defer cancel()

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "email", "last_updated"}),
	}).Create(model.FromProfile(profile))
	if result.Error != nil {
		return r.handleDatabaseError("upsert_user_profile", result.Error, map[string]any{"user_id": profile.UserID})
	}

	return nil
}

// GetUserProfile retrieves a profile by user ID
func (r *PostgresRecordStore) GetUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var row model.UserProfile
	result := db.Where("user_id = ?", userID).First(&row)
	if result.Error != nil {
		return nil, r.handleDatabaseError("get_user_profile", result.Error, map[string]any{"user_id": userID})
	}

	return row.ToEntity(), nil
}

// AppendTransaction inserts a new purchase row
func (r *PostgresRecordStore) AppendTransaction(ctx context.Context, record *entity.TransactionRecord) error {
	if record == nil || record.TransactionID == "" {
		return errs.ErrInvalidRequest
	}

	db, cancel := r.session(ctx)
	defer cancel()

	if result := db.Create(model.FromRecord(record)); result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate transaction ID", map[string]any{"transaction_id": record.TransactionID})
		}
		return r.handleDatabaseError("append_transaction", result.Error, map[string]any{
			"transaction_id": record.TransactionID,
			"user_id":        record.UserID,
		})
	}

	r.logger.Debug("Transaction stored", map[string]any{
		"transaction_id": record.TransactionID,
		"user_id":        record.UserID,
	})
	return nil
}

// ListTransactionsByUser returns a user's purchases oldest first
func (r *PostgresRecordStore) ListTransactionsByUser(ctx context.Context, userID string) ([]*entity.TransactionRecord, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var rows []model.GoldTransaction
	result := db.Where("user_id = ?", userID).Order("timestamp ASC, id ASC").Find(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("list_transactions_by_user", result.Error, map[string]any{"user_id": userID})
	}
	if len(rows) == 0 {
		return nil, errs.ErrUserNotFound
	}

	return toRecords(rows), nil
}

// ListAllTransactions returns every purchase oldest first
func (r *PostgresRecordStore) ListAllTransactions(ctx context.Context) ([]*entity.TransactionRecord, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var rows []model.GoldTransaction
	if result := db.Order("timestamp ASC, id ASC").Find(&rows); result.Error != nil {
		return nil, r.handleDatabaseError("list_all_transactions", result.Error, nil)
	}

	return toRecords(rows), nil
}

// TransactionExists checks if a transaction ID is already stored
func (r *PostgresRecordStore) TransactionExists(ctx context.Context, transactionID string) (bool, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var count int64
	result := db.Model(&model.GoldTransaction{}).Where("transaction_id = ?", transactionID).Count(&count)
	if result.Error != nil {
		return false, r.handleDatabaseError("transaction_exists", result.Error, map[string]any{"transaction_id": transactionID})
	}

	return count > 0, nil
}

func toRecords(rows []model.GoldTransaction) []*entity.TransactionRecord {
	records := make([]*entity.TransactionRecord, len(rows))
	for i := range rows {
		records[i] = rows[i].ToEntity()
	}
	return records
}

var _ persistence.RecordStore = (*PostgresRecordStore)(nil)
