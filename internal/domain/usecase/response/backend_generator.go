package response

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

// Sampling holds the generation parameters sent with every call
type Sampling struct {
	Temperature     float32
	MaxOutputTokens int32
	Timeout         coreport.Duration // 0 disables the bound
}

// BackendGenerator asks a hosted model for the reply and falls back to templates
type BackendGenerator struct {
	backend      gateway.TextBackend
	rules        *RuleGenerator
	oracle       usecase.PriceOracle
	sampling     Sampling
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewBackendGenerator wraps the template bank with a backend call
func NewBackendGenerator(
	backend gateway.TextBackend,
	rules *RuleGenerator,
	oracle usecase.PriceOracle,
	sampling Sampling,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *BackendGenerator {
	return &BackendGenerator{
		backend:      backend,
		rules:        rules,
		oracle:       oracle,
		sampling:     sampling,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Generate returns the backend text verbatim, or a template when the call fails
func (g *BackendGenerator) Generate(ctx context.Context, message string, goldRelated bool) usecase.Reply {
	text, err := g.ask(ctx, message, goldRelated)
	if err == nil {
		return usecase.Reply{Text: text, Source: usecase.SourceBackend}
	}

	reply := g.rules.Generate(ctx, message, goldRelated)
	reply.BackendErr = err

	g.logger.Warn("Generation backend failed, using templates", map[string]any{
		"backend":      g.backend.Name(),
		"error":        err.Error(),
		"gold_related": goldRelated,
	})
	return reply
}

func (g *BackendGenerator) ask(ctx context.Context, message string, goldRelated bool) (string, error) {
	if g.sampling.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = g.timeProvider.WithTimeout(ctx, g.sampling.Timeout)
		defer cancel()
	}

	temperature := g.sampling.Temperature
	text, err := g.backend.Complete(ctx, gateway.CompletionRequest{
		SystemInstruction: g.instruction(goldRelated),
		UserText:          message,
		Temperature:       &temperature,
		MaxOutputTokens:   g.sampling.MaxOutputTokens,
	})
	if err != nil {
		return "", errs.NewBackendError(errs.ErrGenerationBackend, g.backend.Name(), "generate", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errs.NewBackendError(errs.ErrGenerationBackend, g.backend.Name(), "generate",
			errors.New("empty reply"))
	}
	return text, nil
}

func (g *BackendGenerator) instruction(goldRelated bool) string {
	if !goldRelated {
		return generalInstruction
	}

	quote := g.oracle.Quote()
	return fmt.Sprintf(goldInstructionTemplate,
		entity.FormatMoney(quote.UnitPriceLocal), quote.LocalCurrency,
		entity.FormatMoney(quote.UnitPriceBase), quote.BaseCurrency,
	)
}

var _ usecase.ResponseGenerator = (*BackendGenerator)(nil)
