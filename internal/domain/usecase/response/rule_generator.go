package response

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

// RuleGenerator picks a reply from a fixed template bank
type RuleGenerator struct {
	oracle usecase.PriceOracle
}

// NewRuleGenerator creates a generator whose price template reads from oracle
func NewRuleGenerator(oracle usecase.PriceOracle) *RuleGenerator {
	return &RuleGenerator{oracle: oracle}
}

// Generate never fails
func (g *RuleGenerator) Generate(_ context.Context, message string, goldRelated bool) usecase.Reply {
	return usecase.Reply{
		Text:   g.text(message, goldRelated),
		Source: usecase.SourceRules,
	}
}

func (g *RuleGenerator) text(message string, goldRelated bool) string {
	if !goldRelated {
		return genericTemplate
	}

	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, priceWords):
		quote := g.oracle.Quote()
		return fmt.Sprintf(priceTemplate,
			entity.FormatMoney(quote.UnitPriceLocal), quote.LocalCurrency,
			entity.FormatMoney(quote.UnitPriceBase), quote.BaseCurrency,
		) + purchaseNudge
	case containsAny(lower, benefitWords):
		return benefitTemplate + purchaseNudge
	default:
		return defaultTemplate + purchaseNudge
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

var _ usecase.ResponseGenerator = (*RuleGenerator)(nil)
