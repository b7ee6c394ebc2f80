package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// StatusCompleted is the only status a purchase is ever recorded with
const StatusCompleted TransactionStatus = "completed"

// TransactionIDPrefix starts every generated transaction identifier
const TransactionIDPrefix = "TXN-"

// TransactionRecord is an immutable record of one completed gold purchase
type TransactionRecord struct {
	UserID                   string
	DisplayName              string
	Email                    string
	TransactionID            string
	GoldWeightGrams          decimal.Decimal // rounded to 4 places once, at creation
	AmountPaidBase           decimal.Decimal
	AmountPaidLocal          decimal.Decimal
	TaxAmount                decimal.Decimal
	TotalWithTax             decimal.Decimal
	UnitPriceLocalAtPurchase decimal.Decimal
	TaxRate                  decimal.Decimal
	Timestamp                time.Time
	Status                   TransactionStatus
	Currency                 string
}

// PurchaseBreakdown holds the computed figures of a purchase before it is recorded
type PurchaseBreakdown struct {
	AmountBase      decimal.Decimal
	AmountLocal     decimal.Decimal
	GoldWeightGrams decimal.Decimal
	TaxRate         decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalWithTax    decimal.Decimal
	UnitPriceLocal  decimal.Decimal
	Currency        string
}

// NewTransactionRecord creates a completed record for the given profile
func NewTransactionRecord(
	profile UserProfile,
	transactionID string,
	breakdown PurchaseBreakdown,
	timestamp time.Time,
) *TransactionRecord {
	return &TransactionRecord{
		UserID:                   profile.UserID,
		DisplayName:              profile.DisplayName,
		Email:                    profile.Email,
		TransactionID:            transactionID,
		GoldWeightGrams:          breakdown.GoldWeightGrams,
		AmountPaidBase:           breakdown.AmountBase,
		AmountPaidLocal:          breakdown.AmountLocal,
		TaxAmount:                breakdown.TaxAmount,
		TotalWithTax:             breakdown.TotalWithTax,
		UnitPriceLocalAtPurchase: breakdown.UnitPriceLocal,
		TaxRate:                  breakdown.TaxRate,
		Timestamp:                timestamp,
		Status:                   StatusCompleted,
		Currency:                 breakdown.Currency,
	}
}

// Clone returns a copy that can be handed out without sharing state
func (t *TransactionRecord) Clone() *TransactionRecord {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
