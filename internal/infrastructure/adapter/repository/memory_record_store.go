package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/persistence"
)

// MemoryRecordStore keeps profiles and purchases in process memory.
// It serves as the fallback store and as the primary store when no database is configured.
type MemoryRecordStore struct {
	mu           sync.RWMutex
	profiles     map[string]entity.UserProfile
	transactions map[string][]*entity.TransactionRecord // by user ID, in insertion order
	ids          map[string]struct{}
}

// NewMemoryRecordStore creates an empty store
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		profiles:     make(map[string]entity.UserProfile),
		transactions: make(map[string][]*entity.TransactionRecord),
		ids:          make(map[string]struct{}),
	}
}

// Name identifies the store in logs
func (s *MemoryRecordStore) Name() string {
	return "memory"
}

// Ping always succeeds
func (s *MemoryRecordStore) Ping(context.Context) error {
	return nil
}

// UpsertUserProfile stores a copy of the profile, replacing any previous one
func (s *MemoryRecordStore) UpsertUserProfile(_ context.Context, profile *entity.UserProfile) error {
	if profile == nil || strings.TrimSpace(profile.UserID) == "" {
		return errs.ErrInvalidUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[profile.UserID] = *profile
	return nil
}

// GetUserProfile returns a copy of the stored profile
func (s *MemoryRecordStore) GetUserProfile(_ context.Context, userID string) (*entity.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return &profile, nil
}

// AppendTransaction stores a copy of the record
func (s *MemoryRecordStore) AppendTransaction(_ context.Context, record *entity.TransactionRecord) error {
	if record == nil || record.TransactionID == "" {
		return errs.ErrInvalidRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions[record.UserID] = append(s.transactions[record.UserID], record.Clone())
	s.ids[record.TransactionID] = struct{}{}
	return nil
}

// ListTransactionsByUser returns copies of the user's records in insertion order
func (s *MemoryRecordStore) ListTransactionsByUser(_ context.Context, userID string) ([]*entity.TransactionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.transactions[userID]
	if len(records) == 0 {
		return nil, errs.ErrUserNotFound
	}
	return cloneAll(records), nil
}

// ListAllTransactions returns copies of every record ordered by time
func (s *MemoryRecordStore) ListAllTransactions(context.Context) ([]*entity.TransactionRecord, error) {
	s.mu.RLock()
	all := make([]*entity.TransactionRecord, 0, len(s.ids))
	for _, records := range s.transactions {
		all = append(all, cloneAll(records)...)
	}
	s.mu.RUnlock()

	sortByTimestamp(all)
	return all, nil
}

// TransactionExists checks if a record with the given transaction ID is stored
func (s *MemoryRecordStore) TransactionExists(_ context.Context, transactionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.ids[transactionID]
	return ok, nil
}

func sortByTimestamp(records []*entity.TransactionRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Timestamp.Equal(records[j].Timestamp) {
			return records[i].TransactionID < records[j].TransactionID
		}
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
}

func cloneAll(records []*entity.TransactionRecord) []*entity.TransactionRecord {
	out := make([]*entity.TransactionRecord, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

var _ persistence.RecordStore = (*MemoryRecordStore)(nil)
