package intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

func TestRuleClassifier_IsGoldRelated(t *testing.T) {
	classifier := NewRuleClassifier()

	testCases := []struct {
		name     string
		message  string
		expected bool
	}{
		{"price question", "What is the current gold price?", true},
		{"should I invest", "Should I invest in gold?", true},
		{"buying digital gold", "How do I buy digital gold?", true},
		{"portfolio question", "Is gold a good investment for my portfolio?", true},
		{"bullion without the word gold", "Where can I store BULLION safely?", true},
		{"weather", "What's the weather today?", false},
		{"cooking", "How do I cook pasta?", false},
		{"other investments", "Tell me about stocks", false},
		{"literal use", "My golden retriever is sick", false},
		{"negative beats positive", "Would a golden retriever owner like a gold investment?", false},
		{"sport", "Who won the gold medal?", false},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verdict := classifier.IsGoldRelated(context.Background(), tc.message)

			assert.Equal(t, tc.expected, verdict.GoldRelated)
			assert.Equal(t, usecase.SourceRules, verdict.Source)
			assert.NoError(t, verdict.BackendErr)
		})
	}
}

func TestRuleClassifier_IsPurchaseConsent(t *testing.T) {
	classifier := NewRuleClassifier()

	testCases := []struct {
		name     string
		message  string
		expected bool
	}{
		{"plain yes", "yes", true},
		{"shouting with spaces", "   YES!  ", true},
		{"affirmative phrase", "Sure, let's do it", true},
		{"invest phrase", "I want to invest", true},
		{"buy", "Buy", true},
		{"proceed", "please proceed", true},
		{"start investment", "start investment now", true},
		{"inflected buy", "I'm buying now", true},
		{"inflected purchase", "purchasing please", true},
		{"inflected proceed", "okie, proceeding", true},
		{"trailing punctuation", "yes!", true},
		{"question", "tell me more about gold", false},
		{"empty", "   ", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifier.IsPurchaseConsent(tc.message))
		})
	}
}
