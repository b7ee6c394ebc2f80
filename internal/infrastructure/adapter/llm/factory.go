package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/config"
)

// ErrNoProvider means the service runs on rules only
var ErrNoProvider = errors.New("no llm provider configured")

// ParameterGetter resolves a secret by name
type ParameterGetter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

// NewBackend builds the configured text backend. It returns ErrNoProvider
// when cfg.Provider is empty.
func NewBackend(ctx context.Context, cfg config.LLMConfig, params ParameterGetter, logger coreport.Logger) (gateway.TextBackend, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		return nil, ErrNoProvider
	}

	apiKey, err := resolveAPIKey(ctx, cfg, params)
	if err != nil {
		return nil, err
	}

	var backend gateway.TextBackend
	switch provider {
	case config.ProviderGemini:
		backend, err = NewGeminiBackend(ctx, apiKey, cfg.Model)
	case config.ProviderOpenAI:
		backend, err = NewOpenAIBackend(apiKey, cfg.Model, WithBaseURL(cfg.BaseURL))
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Text backend configured", map[string]any{
		"backend": backend.Name(),
		"timeout": cfg.Timeout.String(),
	})
	return backend, nil
}

func resolveAPIKey(ctx context.Context, cfg config.LLMConfig, params ParameterGetter) (string, error) {
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		return key, nil
	}
	if cfg.APIKeyParameter == "" {
		return "", fmt.Errorf("llm provider %q has no API key", cfg.Provider)
	}
	if params == nil {
		return "", fmt.Errorf("API key parameter %q set but no parameter store available", cfg.APIKeyParameter)
	}

	key, err := params.GetParameter(ctx, cfg.APIKeyParameter)
	if err != nil {
		return "", fmt.Errorf("resolve llm API key: %w", err)
	}
	return key, nil
}
