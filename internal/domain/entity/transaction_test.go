package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremocks "github.com/amirhossein-jamali/gold-advisor/mocks/port/core"
)

func TestNewTransactionRecord(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	profile, err := NewUserProfile("user123", "John Doe", "john@example.com", mockTime)
	require.NoError(t, err)

	breakdown := PurchaseBreakdown{
		AmountBase:      decimal.RequireFromString("11.98"),
		AmountLocal:     decimal.NewFromInt(1000),
		GoldWeightGrams: decimal.RequireFromString("0.1828"),
		TaxRate:         decimal.RequireFromString("0.03"),
		TaxAmount:       decimal.NewFromInt(30),
		TotalWithTax:    decimal.NewFromInt(1030),
		UnitPriceLocal:  decimal.RequireFromString("5469.25"),
		Currency:        "INR",
	}

	record := NewTransactionRecord(*profile, "TXN-1A2B3C4D", breakdown, fixedTime)

	assert.Equal(t, "user123", record.UserID)
	assert.Equal(t, "John Doe", record.DisplayName)
	assert.Equal(t, "TXN-1A2B3C4D", record.TransactionID)
	assert.Equal(t, StatusCompleted, record.Status)
	assert.Equal(t, "INR", record.Currency)
	assert.Equal(t, fixedTime, record.Timestamp)
	assert.True(t, record.TotalWithTax.Equal(decimal.NewFromInt(1030)))
	assert.True(t, record.AmountPaidBase.Equal(decimal.RequireFromString("11.98")))

	t.Run("Clone does not share state", func(t *testing.T) {
		clone := record.Clone()
		clone.DisplayName = "Someone Else"

		assert.Equal(t, "John Doe", record.DisplayName)
		assert.Nil(t, (*TransactionRecord)(nil).Clone())
	})
}
