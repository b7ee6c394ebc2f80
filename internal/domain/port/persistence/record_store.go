package persistence

import (
	"context"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
)

// RecordStore owns user profiles and purchase records
type RecordStore interface {
	// Name identifies the backend in logs (memory, postgres, dynamodb)
	Name() string

	// Ping probes the backend for reachability
	// Possible errors:
	// - ErrPersistenceBackend: the backend cannot be reached
	Ping(ctx context.Context) error

	// UpsertUserProfile creates or overwrites the profile keyed by its user ID
	// Possible errors:
	// - ErrInvalidUserID: the profile has no user ID
	// - ErrPersistenceBackend: the write failed
	UpsertUserProfile(ctx context.Context, profile *entity.UserProfile) error

	// GetUserProfile retrieves the latest profile of a user
	// Possible errors:
	// - ErrUserNotFound: no profile exists for the user
	// - ErrPersistenceBackend: the read failed
	GetUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error)

	// AppendTransaction stores a new purchase record
	// Possible errors:
	// - ErrInvalidRequest: the record has no transaction ID
	// - ErrPersistenceBackend: the write failed
	AppendTransaction(ctx context.Context, record *entity.TransactionRecord) error

	// ListTransactionsByUser returns the user's records oldest first
	// Possible errors:
	// - ErrUserNotFound: the user has no records
	// - ErrPersistenceBackend: the read failed
	ListTransactionsByUser(ctx context.Context, userID string) ([]*entity.TransactionRecord, error)

	// ListAllTransactions returns every record oldest first; an empty store yields an empty slice
	// Possible errors:
	// - ErrPersistenceBackend: the read failed
	ListAllTransactions(ctx context.Context) ([]*entity.TransactionRecord, error)

	// TransactionExists checks if a record with the given transaction ID is stored
	// Possible errors:
	// - ErrPersistenceBackend: the read failed
	TransactionExists(ctx context.Context, transactionID string) (bool, error)
}
