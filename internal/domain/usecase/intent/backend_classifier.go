package intent

import (
	"context"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

// BackendClassifier asks a hosted model first and falls back to the rules on any failure
type BackendClassifier struct {
	backend      gateway.TextBackend
	rules        *RuleClassifier
	timeout      coreport.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewBackendClassifier wraps rules with a backend call bounded by timeout (0 disables the bound)
func NewBackendClassifier(
	backend gateway.TextBackend,
	rules *RuleClassifier,
	timeout coreport.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *BackendClassifier {
	return &BackendClassifier{
		backend:      backend,
		rules:        rules,
		timeout:      timeout,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// IsGoldRelated never returns an error; a failed call is reported in Verdict.BackendErr
func (c *BackendClassifier) IsGoldRelated(ctx context.Context, message string) usecase.Verdict {
	related, err := c.ask(ctx, message)
	if err == nil {
		return usecase.Verdict{GoldRelated: related, Source: usecase.SourceBackend}
	}

	verdict := c.rules.IsGoldRelated(ctx, message)
	verdict.BackendErr = err

	c.logger.Warn("Classification backend failed, using keyword rules", map[string]any{
		"backend": c.backend.Name(),
		"error":   err.Error(),
		"verdict": verdict.GoldRelated,
	})
	return verdict
}

// IsPurchaseConsent is always answered locally
func (c *BackendClassifier) IsPurchaseConsent(message string) bool {
	return c.rules.IsPurchaseConsent(message)
}

func (c *BackendClassifier) ask(ctx context.Context, message string) (bool, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = c.timeProvider.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	temperature := float32(0)
	reply, err := c.backend.Complete(ctx, gateway.CompletionRequest{
		SystemInstruction: classificationInstruction,
		UserText:          message,
		Temperature:       &temperature,
		MaxOutputTokens:   5,
	})
	if err != nil {
		return false, errs.NewBackendError(errs.ErrClassificationBackend, c.backend.Name(), "classify", err)
	}

	switch strings.ToUpper(strings.Trim(strings.TrimSpace(reply), ".\"'`")) {
	case "TRUE":
		return true, nil
	case "FALSE":
		return false, nil
	default:
		return false, errs.NewBackendError(errs.ErrClassificationBackend, c.backend.Name(), "classify",
			fmt.Errorf("malformed verdict %q", reply))
	}
}

var _ usecase.IntentClassifier = (*BackendClassifier)(nil)
