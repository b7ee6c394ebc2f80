package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
)

const (
	// MoneyDecimalPlaces is the precision of every currency amount
	MoneyDecimalPlaces = 2
	// WeightDecimalPlaces is the precision of gold weights in grams
	WeightDecimalPlaces = 4
)

// ParseAmount parses a decimal amount string such as "1000" or "65.50"
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidRequest)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
	}
	return value, nil
}

// RoundMoney rounds a currency amount to two decimal places
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyDecimalPlaces)
}

// RoundWeight rounds a gold weight to four decimal places
func RoundWeight(grams decimal.Decimal) decimal.Decimal {
	return grams.Round(WeightDecimalPlaces)
}

// FormatMoney renders an amount with exactly two decimal places
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyDecimalPlaces)
}

// FormatWeight renders a weight with exactly four decimal places
func FormatWeight(grams decimal.Decimal) string {
	return grams.StringFixed(WeightDecimalPlaces)
}
