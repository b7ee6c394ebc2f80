package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

// TransactionSource lists every stored purchase
type TransactionSource interface {
	AllTransactions(ctx context.Context) ([]*entity.TransactionRecord, error)
}

// Aggregator computes the analytics summary on demand
type Aggregator struct {
	source TransactionSource
}

// NewAggregator creates a new Aggregator
func NewAggregator(source TransactionSource) *Aggregator {
	return &Aggregator{source: source}
}

// Summarize walks all purchases; the average is 0 when there are none
func (a *Aggregator) Summarize(ctx context.Context) (*usecase.AnalyticsSummary, error) {
	records, err := a.source.AllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize purchases: %w", err)
	}

	summary := &usecase.AnalyticsSummary{
		TotalGoldGrams:    decimal.Zero,
		TotalRevenueBase:  decimal.Zero,
		TotalRevenueLocal: decimal.Zero,
	}

	users := make(map[string]struct{})
	for _, r := range records {
		users[r.UserID] = struct{}{}
		summary.TotalGoldGrams = summary.TotalGoldGrams.Add(r.GoldWeightGrams)
		summary.TotalRevenueBase = summary.TotalRevenueBase.Add(r.AmountPaidBase)
		summary.TotalRevenueLocal = summary.TotalRevenueLocal.Add(r.AmountPaidLocal)
	}

	summary.TotalUsers = len(users)
	summary.TotalTransactions = len(records)

	divisor := int64(max(summary.TotalTransactions, 1))
	summary.AverageTransactionSize = summary.TotalRevenueBase.Div(decimal.NewFromInt(divisor))

	return summary, nil
}

var _ usecase.AnalyticsUseCase = (*Aggregator)(nil)
