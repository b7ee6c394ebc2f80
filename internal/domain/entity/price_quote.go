package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
)

// PriceQuote is the static gold price in both currencies
type PriceQuote struct {
	UnitPriceBase  decimal.Decimal // price per gram in the base currency
	ConversionRate decimal.Decimal // base -> local
	UnitPriceLocal decimal.Decimal // UnitPriceBase x ConversionRate
	BaseCurrency   string
	LocalCurrency  string
	QuotedAt       time.Time
}

// NewPriceQuote builds a quote and derives the local unit price.
// Both the unit price and the conversion rate must be positive.
func NewPriceQuote(
	unitPriceBase decimal.Decimal,
	conversionRate decimal.Decimal,
	baseCurrency string,
	localCurrency string,
	quotedAt time.Time,
) (PriceQuote, error) {
	if !unitPriceBase.IsPositive() {
		return PriceQuote{}, fmt.Errorf("%w: unit price must be positive, got %s", errs.ErrInvalidAmount, unitPriceBase)
	}
	if !conversionRate.IsPositive() {
		return PriceQuote{}, fmt.Errorf("%w: conversion rate must be positive, got %s", errs.ErrInvalidAmount, conversionRate)
	}

	return PriceQuote{
		UnitPriceBase:  unitPriceBase,
		ConversionRate: conversionRate,
		UnitPriceLocal: unitPriceBase.Mul(conversionRate),
		BaseCurrency:   baseCurrency,
		LocalCurrency:  localCurrency,
		QuotedAt:       quotedAt,
	}, nil
}

// ToLocal converts a base currency amount to the local currency
func (q PriceQuote) ToLocal(amountBase decimal.Decimal) decimal.Decimal {
	return amountBase.Mul(q.ConversionRate)
}

// ToBase converts a local currency amount back to the base currency
func (q PriceQuote) ToBase(amountLocal decimal.Decimal) decimal.Decimal {
	return amountLocal.Div(q.ConversionRate)
}

// GramsFor returns the unrounded gold weight a local amount buys
func (q PriceQuote) GramsFor(amountLocal decimal.Decimal) decimal.Decimal {
	return amountLocal.Div(q.UnitPriceLocal)
}
