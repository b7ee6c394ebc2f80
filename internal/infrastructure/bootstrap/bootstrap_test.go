package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/intent"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/response"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/config"
)

func testPricing() config.PricingConfig {
	return config.PricingConfig{
		UnitPriceBase:      "65.50",
		ConversionRate:     "83.50",
		BaseCurrency:       "USD",
		LocalCurrency:      "INR",
		TaxRate:            "0.03",
		MinimumLocalAmount: "10",
	}
}

func TestOpenStores(t *testing.T) {
	t.Run("Memory backend", func(t *testing.T) {
		cfg := &config.Config{Store: config.StoreConfig{Backend: config.BackendMemory}}

		stores, err := OpenStores(context.Background(), cfg, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())

		require.NoError(t, err)
		assert.True(t, stores.Degraded())
		assert.Equal(t, "memory", stores.Primary.Name())
		assert.NoError(t, stores.Close())
	})

	t.Run("Unknown backend", func(t *testing.T) {
		cfg := &config.Config{Store: config.StoreConfig{Backend: "cassandra"}}

		_, err := OpenStores(context.Background(), cfg, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())

		require.Error(t, err)
	})

	t.Run("Invalid postgres settings fall back to memory", func(t *testing.T) {
		cfg := &config.Config{
			Store:    config.StoreConfig{Backend: config.BackendPostgres},
			Database: config.DatabaseConfig{Port: "not-a-port"},
		}

		stores, err := OpenStores(context.Background(), cfg, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())

		require.NoError(t, err)
		assert.True(t, stores.Degraded())
	})
}

func TestPricingFromConfig(t *testing.T) {
	oracle, err := NewOracle(testPricing(), timeProvider.NewRealTimeProvider())
	require.NoError(t, err)

	quote := oracle.Quote()
	assert.True(t, decimal.RequireFromString("5469.25").Equal(quote.UnitPriceLocal))

	settings := PurchaseSettings(testPricing())
	assert.True(t, decimal.RequireFromString("0.03").Equal(settings.TaxRate))
	assert.True(t, decimal.NewFromInt(10).Equal(settings.MinimumLocal))
}

func TestNewOracle_RejectsZeroPrice(t *testing.T) {
	pricing := testPricing()
	pricing.UnitPriceBase = "0"

	_, err := NewOracle(pricing, timeProvider.NewRealTimeProvider())

	require.Error(t, err)
}

func TestChatComponents(t *testing.T) {
	log := logger.NewNoopLogger()
	tp := timeProvider.NewRealTimeProvider()
	oracle, err := NewOracle(testPricing(), tp)
	require.NoError(t, err)

	t.Run("Rules only without a provider", func(t *testing.T) {
		backend := NewTextBackend(context.Background(), config.LLMConfig{}, log)

		assert.Nil(t, backend)
		assert.Empty(t, BackendName(backend))
		assert.IsType(t, &intent.RuleClassifier{}, NewIntentClassifier(backend, config.LLMConfig{}, tp, log))
		assert.IsType(t, &response.RuleGenerator{}, NewResponseGenerator(backend, oracle, config.LLMConfig{}, tp, log))
	})

	t.Run("Rules only when the key is missing", func(t *testing.T) {
		backend := NewTextBackend(context.Background(), config.LLMConfig{Provider: config.ProviderOpenAI}, log)

		assert.Nil(t, backend)
	})

	t.Run("Backend wraps the rules", func(t *testing.T) {
		cfg := config.LLMConfig{
			Provider: config.ProviderOpenAI,
			Model:    "gpt-test",
			APIKey:   "sk-test",
			Timeout:  5 * time.Second,
		}

		backend := NewTextBackend(context.Background(), cfg, log)

		require.NotNil(t, backend)
		assert.Equal(t, "openai:gpt-test", BackendName(backend))
		assert.IsType(t, &intent.BackendClassifier{}, NewIntentClassifier(backend, cfg, tp, log))
		assert.IsType(t, &response.BackendGenerator{}, NewResponseGenerator(backend, oracle, cfg, tp, log))
	})
}
