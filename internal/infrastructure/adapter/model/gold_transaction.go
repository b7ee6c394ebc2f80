package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoldTransaction represents the database model for a completed gold purchase
type GoldTransaction struct {
	ID                       uint64          `gorm:"primaryKey;autoIncrement"`
	TransactionID            string          `gorm:"uniqueIndex;not null;size:32"`
	UserID                   string          `gorm:"not null;index;size:255"`
	DisplayName              string          `gorm:"size:255"`
	Email                    string          `gorm:"size:255"`
	GoldWeightGrams          decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	AmountPaidBase           decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	AmountPaidLocal          decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	TaxAmount                decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	TotalWithTax             decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	UnitPriceLocalAtPurchase decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	TaxRate                  decimal.Decimal `gorm:"type:numeric(6,4);not null"`
	Currency                 string          `gorm:"not null;size:8"`
	Status                   string          `gorm:"not null;size:20"`
	Timestamp                time.Time       `gorm:"not null;index"`
}

// TableName specifies the table name for GoldTransaction
func (GoldTransaction) TableName() string {
	return "gold_transactions"
}
