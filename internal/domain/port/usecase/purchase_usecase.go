package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
)

// PurchaseRequest is an inbound request to buy digital gold
type PurchaseRequest struct {
	UserID      string
	DisplayName string
	Email       string
	AmountBase  decimal.Decimal
	// AmountLocal takes precedence over AmountBase when valid
	AmountLocal decimal.NullDecimal
}

// PersistenceMedium records where a purchase ended up being stored
type PersistenceMedium string

const (
	// MediumDurable is the configured durable store
	MediumDurable PersistenceMedium = "durable"
	// MediumFallback is the in-memory fallback store
	MediumFallback PersistenceMedium = "fallback"
)

// PurchaseResult is the caller-facing result of a purchase
type PurchaseResult struct {
	Success      bool
	Record       *entity.TransactionRecord
	Medium       PersistenceMedium
	Message      string
	ErrorMessage string
	StatusCode   int // HTTP status code
}

// PurchaseUseCase runs the purchase pipeline
type PurchaseUseCase interface {
	Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)
}
