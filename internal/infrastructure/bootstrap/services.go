package bootstrap

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ssm"

	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/intent"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/pricing"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/purchase"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/response"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/llm"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/paramstore"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/config"
)

// NewOracle freezes the configured gold price
func NewOracle(cfg config.PricingConfig, timeProvider coreport.TimeProvider) (*pricing.Oracle, error) {
	return pricing.NewOracle(pricing.Settings{
		UnitPriceBase:  config.Decimal(cfg.UnitPriceBase),
		ConversionRate: config.Decimal(cfg.ConversionRate),
		BaseCurrency:   cfg.BaseCurrency,
		LocalCurrency:  cfg.LocalCurrency,
	}, timeProvider)
}

// PurchaseSettings reads the tax rate and minimum amount
func PurchaseSettings(cfg config.PricingConfig) purchase.Settings {
	return purchase.Settings{
		TaxRate:      config.Decimal(cfg.TaxRate),
		MinimumLocal: config.Decimal(cfg.MinimumLocalAmount),
	}
}

// NewTextBackend builds the configured backend. It returns nil when no
// provider is set or the backend cannot be built, so callers run on rules.
func NewTextBackend(ctx context.Context, cfg config.LLMConfig, logger coreport.Logger) gateway.TextBackend {
	var params llm.ParameterGetter
	if strings.TrimSpace(cfg.APIKey) == "" && cfg.APIKeyParameter != "" {
		store, err := newParameterStore(ctx)
		if err != nil {
			logger.Warn("Parameter store unavailable", map[string]any{
				"error": err.Error(),
			})
		} else {
			params = store
		}
	}

	backend, err := llm.NewBackend(ctx, cfg, params, logger)
	if err != nil {
		if errors.Is(err, llm.ErrNoProvider) {
			logger.Info("No text backend configured, answering with local rules", nil)
		} else {
			logger.Warn("Text backend unavailable, answering with local rules", map[string]any{
				"provider": cfg.Provider,
				"error":    err.Error(),
			})
		}
		return nil
	}
	return backend
}

func newParameterStore(ctx context.Context) (*paramstore.Client, error) {
	awsCfg, err := LoadAWSConfig(ctx, "")
	if err != nil {
		return nil, err
	}
	return paramstore.New(ssm.NewFromConfig(awsCfg))
}

// NewIntentClassifier returns the keyword rules, wrapped by the backend when there is one
func NewIntentClassifier(
	backend gateway.TextBackend,
	cfg config.LLMConfig,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.IntentClassifier {
	rules := intent.NewRuleClassifier()
	if backend == nil {
		return rules
	}
	return intent.NewBackendClassifier(backend, rules, coreport.Duration(cfg.Timeout), timeProvider, logger)
}

// NewResponseGenerator returns the template bank, wrapped by the backend when there is one
func NewResponseGenerator(
	backend gateway.TextBackend,
	oracle usecase.PriceOracle,
	cfg config.LLMConfig,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.ResponseGenerator {
	rules := response.NewRuleGenerator(oracle)
	if backend == nil {
		return rules
	}
	return response.NewBackendGenerator(backend, rules, oracle, response.Sampling{
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
		Timeout:         coreport.Duration(cfg.Timeout),
	}, timeProvider, logger)
}

// BackendName is the backend's name, or empty for rules only
func BackendName(backend gateway.TextBackend) string {
	if backend == nil {
		return ""
	}
	return backend.Name()
}
