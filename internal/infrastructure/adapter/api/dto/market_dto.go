package dto

import (
	"time"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

// GoldPriceResponse represents the API response for GET /gold-price
type GoldPriceResponse struct {
	UnitPriceBase  float64   `json:"unitPriceBase"`
	UnitPriceLocal float64   `json:"unitPriceLocal"`
	ConversionRate float64   `json:"conversionRate"`
	BaseCurrency   string    `json:"baseCurrency"`
	LocalCurrency  string    `json:"localCurrency"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// NewGoldPriceResponse maps a quote read at lastUpdated
func NewGoldPriceResponse(quote entity.PriceQuote, lastUpdated time.Time) GoldPriceResponse {
	return GoldPriceResponse{
		UnitPriceBase:  quote.UnitPriceBase.InexactFloat64(),
		UnitPriceLocal: quote.UnitPriceLocal.InexactFloat64(),
		ConversionRate: quote.ConversionRate.InexactFloat64(),
		BaseCurrency:   quote.BaseCurrency,
		LocalCurrency:  quote.LocalCurrency,
		LastUpdated:    lastUpdated,
	}
}

// AnalyticsResponse represents the API response for GET /analytics
type AnalyticsResponse struct {
	TotalUsers             int     `json:"totalUsers"`
	TotalTransactions      int     `json:"totalTransactions"`
	TotalGoldGrams         float64 `json:"totalGoldGrams"`
	TotalRevenueBase       float64 `json:"totalRevenueBase"`
	TotalRevenueLocal      float64 `json:"totalRevenueLocal"`
	AverageTransactionSize float64 `json:"averageTransactionSize"`
}

// NewAnalyticsResponse maps an analytics summary
func NewAnalyticsResponse(summary *usecase.AnalyticsSummary) AnalyticsResponse {
	return AnalyticsResponse{
		TotalUsers:             summary.TotalUsers,
		TotalTransactions:      summary.TotalTransactions,
		TotalGoldGrams:         summary.TotalGoldGrams.InexactFloat64(),
		TotalRevenueBase:       summary.TotalRevenueBase.InexactFloat64(),
		TotalRevenueLocal:      summary.TotalRevenueLocal.InexactFloat64(),
		AverageTransactionSize: entity.RoundMoney(summary.AverageTransactionSize).InexactFloat64(),
	}
}
