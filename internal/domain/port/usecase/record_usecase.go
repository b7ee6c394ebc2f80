package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
)

// PriceOracle hands out the static gold price
type PriceOracle interface {
	Quote() entity.PriceQuote
}

// UserRecords is everything stored about one user
type UserRecords struct {
	UserID       string
	Profile      *entity.UserProfile // nil when only transactions are known
	Transactions []*entity.TransactionRecord
}

// RecordQueryUseCase reads stored purchases
type RecordQueryUseCase interface {
	// GetUserRecords returns ErrUserNotFound when the user has no purchases
	GetUserRecords(ctx context.Context, userID string) (*UserRecords, error)
	// ListUsers returns all purchases grouped by user, ordered by user ID
	ListUsers(ctx context.Context) ([]UserRecords, error)
}

// AnalyticsSummary aggregates every stored purchase
type AnalyticsSummary struct {
	TotalUsers             int
	TotalTransactions      int
	TotalGoldGrams         decimal.Decimal
	TotalRevenueBase       decimal.Decimal
	TotalRevenueLocal      decimal.Decimal
	AverageTransactionSize decimal.Decimal
}

// AnalyticsUseCase summarizes stored purchases
type AnalyticsUseCase interface {
	Summarize(ctx context.Context) (*AnalyticsSummary, error)
}
