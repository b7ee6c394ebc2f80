package intent

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

// RuleClassifier classifies messages with fixed keyword sets
type RuleClassifier struct {
	negative []string
	positive []string
	consent  []string
}

// NewRuleClassifier creates a classifier over the built-in keyword sets
func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{
		negative: negativeKeywords,
		positive: positiveKeywords,
		consent:  consentPhrases,
	}
}

// IsGoldRelated applies the keyword rules. Negative keywords win over positive ones.
func (c *RuleClassifier) IsGoldRelated(_ context.Context, message string) usecase.Verdict {
	return usecase.Verdict{
		GoldRelated: c.matchesGold(message),
		Source:      usecase.SourceRules,
	}
}

func (c *RuleClassifier) matchesGold(message string) bool {
	lower := strings.ToLower(message)

	for _, keyword := range c.negative {
		if strings.Contains(lower, keyword) {
			return false
		}
	}
	for _, keyword := range c.positive {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// IsPurchaseConsent reports whether the message contains a consent phrase anywhere,
// so inflected forms such as "buying" or "proceeding" also count
func (c *RuleClassifier) IsPurchaseConsent(message string) bool {
	lower := strings.ToLower(strings.TrimSpace(message))
	if lower == "" {
		return false
	}

	for _, phrase := range c.consent {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

var _ usecase.IntentClassifier = (*RuleClassifier)(nil)
