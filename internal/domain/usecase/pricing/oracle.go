package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

// Settings are the static price inputs read from configuration
type Settings struct {
	UnitPriceBase  decimal.Decimal
	ConversionRate decimal.Decimal
	BaseCurrency   string
	LocalCurrency  string
}

// Oracle serves a price quote fixed at construction time
type Oracle struct {
	quote entity.PriceQuote
}

// NewOracle validates the settings and freezes the quote
func NewOracle(settings Settings, timeProvider coreport.TimeProvider) (*Oracle, error) {
	quote, err := entity.NewPriceQuote(
		settings.UnitPriceBase,
		settings.ConversionRate,
		settings.BaseCurrency,
		settings.LocalCurrency,
		timeProvider.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid pricing settings: %w", err)
	}

	return &Oracle{quote: quote}, nil
}

// Quote returns the same quote on every call
func (o *Oracle) Quote() entity.PriceQuote {
	return o.quote
}

var _ usecase.PriceOracle = (*Oracle)(nil)
