package record

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

// QueryService reads purchases from every store a record may have landed in
type QueryService struct {
	stores []persistence.RecordStore
	logger coreport.Logger
}

// NewQueryService merges reads across the given stores; duplicates are ignored
func NewQueryService(logger coreport.Logger, stores ...persistence.RecordStore) *QueryService {
	unique := make([]persistence.RecordStore, 0, len(stores))
	for _, s := range stores {
		if s == nil {
			continue
		}
		seen := false
		for _, existing := range unique {
			if existing == s {
				seen = true
				break
			}
		}
		if !seen {
			unique = append(unique, s)
		}
	}

	return &QueryService{
		stores: unique,
		logger: logger,
	}
}

// GetUserRecords returns the latest profile and every purchase of a user
func (s *QueryService) GetUserRecords(ctx context.Context, userID string) (*usecase.UserRecords, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	var (
		collected []*entity.TransactionRecord
		failures  int
		lastErr   error
	)
	for _, store := range s.stores {
		records, err := store.ListTransactionsByUser(ctx, userID)
		if err != nil {
			if errs.IsNotFoundError(err) {
				continue
			}
			failures++
			lastErr = err
			s.logStoreFailure(store, "list_transactions_by_user", err)
			continue
		}
		collected = append(collected, records...)
	}

	if len(collected) == 0 {
		if failures == len(s.stores) && lastErr != nil {
			return nil, fmt.Errorf("failed to read records for user %s: %w", userID, lastErr)
		}
		return nil, errs.ErrUserNotFound
	}

	return &usecase.UserRecords{
		UserID:       userID,
		Profile:      s.latestProfile(ctx, userID),
		Transactions: merge(collected),
	}, nil
}

// ListUsers returns every purchase grouped by user
func (s *QueryService) ListUsers(ctx context.Context) ([]usecase.UserRecords, error) {
	all, err := s.AllTransactions(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*entity.TransactionRecord)
	for _, record := range all {
		grouped[record.UserID] = append(grouped[record.UserID], record)
	}

	users := make([]usecase.UserRecords, 0, len(grouped))
	for userID, records := range grouped {
		users = append(users, usecase.UserRecords{
			UserID:       userID,
			Profile:      s.latestProfile(ctx, userID),
			Transactions: records,
		})
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })

	return users, nil
}

// AllTransactions returns the merged purchases of all stores, oldest first
func (s *QueryService) AllTransactions(ctx context.Context) ([]*entity.TransactionRecord, error) {
	var (
		collected []*entity.TransactionRecord
		failures  int
		lastErr   error
	)
	for _, store := range s.stores {
		records, err := store.ListAllTransactions(ctx)
		if err != nil {
			failures++
			lastErr = err
			s.logStoreFailure(store, "list_all_transactions", err)
			continue
		}
		collected = append(collected, records...)
	}

	if failures > 0 && failures == len(s.stores) {
		return nil, fmt.Errorf("failed to read transactions: %w", lastErr)
	}

	return merge(collected), nil
}

// latestProfile picks the most recently updated profile, or nil when none is stored
func (s *QueryService) latestProfile(ctx context.Context, userID string) *entity.UserProfile {
	var latest *entity.UserProfile
	for _, store := range s.stores {
		profile, err := store.GetUserProfile(ctx, userID)
		if err != nil {
			if !errs.IsNotFoundError(err) {
				s.logStoreFailure(store, "get_user_profile", err)
			}
			continue
		}
		if latest == nil || profile.LastUpdated.After(latest.LastUpdated) {
			latest = profile
		}
	}
	return latest
}

func (s *QueryService) logStoreFailure(store persistence.RecordStore, operation string, err error) {
	s.logger.Warn("Record store read failed", map[string]any{
		"store":     store.Name(),
		"operation": operation,
		"error":     err.Error(),
	})
}

// merge drops duplicate transaction IDs and orders records by time
func merge(records []*entity.TransactionRecord) []*entity.TransactionRecord {
	seen := make(map[string]struct{}, len(records))
	merged := make([]*entity.TransactionRecord, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.TransactionID]; ok {
			continue
		}
		seen[r.TransactionID] = struct{}{}
		merged = append(merged, r)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Timestamp.Equal(merged[j].Timestamp) {
			return merged[i].TransactionID < merged[j].TransactionID
		}
		return merged[i].Timestamp.Before(merged[j].Timestamp)
	})
	return merged
}

var _ usecase.RecordQueryUseCase = (*QueryService)(nil)
