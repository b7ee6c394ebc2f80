package response

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/gold-advisor/mocks/port/core"
	gatewaymocks "github.com/amirhossein-jamali/gold-advisor/mocks/port/gateway"
)

type fixedOracle struct {
	quote entity.PriceQuote
}

func (o fixedOracle) Quote() entity.PriceQuote { return o.quote }

func newFixedOracle(t *testing.T) fixedOracle {
	t.Helper()
	quote, err := entity.NewPriceQuote(decimal.RequireFromString("65.50"), decimal.RequireFromString("83.50"), "USD", "INR", time.Time{})
	require.NoError(t, err)
	return fixedOracle{quote: quote}
}

func TestRuleGenerator_Generate(t *testing.T) {
	generator := NewRuleGenerator(newFixedOracle(t))

	testCases := []struct {
		name         string
		message      string
		goldRelated  bool
		expectPrefix string
		expectNudge  bool
	}{
		{"price question", "What does gold cost?", true, "The current gold price is 5469.25 INR per gram (65.50 USD).", true},
		{"benefit question", "What are the benefits of gold?", true, "Gold has historically held its value", true},
		{"default template", "Tell me about digital gold", true, "Gold is considered a safe-haven investment", true},
		{"not gold related", "How do I cook pasta?", false, genericTemplate, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reply := generator.Generate(context.Background(), tc.message, tc.goldRelated)

			assert.True(t, strings.HasPrefix(reply.Text, tc.expectPrefix), reply.Text)
			assert.Equal(t, tc.expectNudge, strings.HasSuffix(reply.Text, purchaseNudge))
			assert.Equal(t, usecase.SourceRules, reply.Source)
			assert.NoError(t, reply.BackendErr)
		})
	}
}

func TestBackendGenerator_Generate(t *testing.T) {
	oracle := newFixedOracle(t)
	sampling := Sampling{Temperature: 0.7, MaxOutputTokens: 512}

	t.Run("returns backend text with gold instruction", func(t *testing.T) {
		// Arrange
		mockBackend := gatewaymocks.NewMockTextBackend(t)
		mockBackend.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req gateway.CompletionRequest) bool {
			return strings.Contains(req.SystemInstruction, "5469.25 INR per gram") &&
				req.UserText == "Should I buy gold?" &&
				*req.Temperature == float32(0.7) &&
				req.MaxOutputTokens == 512
		})).Return("  Gold can hedge inflation. Would you like to buy some today?\n", nil).Once()

		generator := NewBackendGenerator(mockBackend, NewRuleGenerator(oracle), oracle, sampling,
			coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		// Act
		reply := generator.Generate(context.Background(), "Should I buy gold?", true)

		// Assert
		assert.Equal(t, "Gold can hedge inflation. Would you like to buy some today?", reply.Text)
		assert.Equal(t, usecase.SourceBackend, reply.Source)
		assert.NoError(t, reply.BackendErr)
	})

	t.Run("uses general instruction for other topics", func(t *testing.T) {
		mockBackend := gatewaymocks.NewMockTextBackend(t)
		mockBackend.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req gateway.CompletionRequest) bool {
			return req.SystemInstruction == generalInstruction
		})).Return("I specialise in gold investment.", nil).Once()

		generator := NewBackendGenerator(mockBackend, NewRuleGenerator(oracle), oracle, sampling,
			coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		reply := generator.Generate(context.Background(), "What's the weather today?", false)

		assert.Equal(t, "I specialise in gold investment.", reply.Text)
	})

	failures := []struct {
		name  string
		reply string
		err   error
	}{
		{"backend error", "", errors.New("503 service unavailable")},
		{"blank reply", "   ", nil},
	}
	for _, tc := range failures {
		t.Run("falls back on "+tc.name, func(t *testing.T) {
			// Arrange
			mockBackend := gatewaymocks.NewMockTextBackend(t)
			mockLogger := coremocks.NewMockLogger(t)
			mockBackend.EXPECT().Complete(mock.Anything, mock.Anything).Return(tc.reply, tc.err).Once()
			mockBackend.EXPECT().Name().Return("openai").Maybe()
			mockLogger.EXPECT().Warn("Generation backend failed, using templates", mock.Anything).Once()

			generator := NewBackendGenerator(mockBackend, NewRuleGenerator(oracle), oracle, sampling,
				coremocks.NewMockTimeProvider(t), mockLogger)

			// Act
			reply := generator.Generate(context.Background(), "Tell me about digital gold", true)

			// Assert
			assert.Equal(t, defaultTemplate+purchaseNudge, reply.Text)
			assert.Equal(t, usecase.SourceRules, reply.Source)
			assert.ErrorIs(t, reply.BackendErr, errs.ErrGenerationBackend)
		})
	}
}
