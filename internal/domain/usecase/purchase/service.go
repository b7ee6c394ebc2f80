package purchase

import (
	"context"
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

// Service ties the purchase components together and maps failures to status codes
type Service struct {
	processor *TransactionProcessor
	logger    coreport.Logger
}

// NewPurchaseService creates a new purchase service.
// Pass the fallback store as primary when no durable backend is available.
func NewPurchaseService(
	oracle usecase.PriceOracle,
	primary persistence.RecordStore,
	fallback persistence.RecordStore,
	settings Settings,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	validator := NewPurchaseValidator(settings.MinimumLocal, oracle.Quote().LocalCurrency)
	identifier := NewIdentifierGenerator(logger, primary, fallback)
	processor := NewTransactionProcessor(oracle, validator, identifier, primary, fallback, settings, timeProvider, logger)

	return &Service{
		processor: processor,
		logger:    logger,
	}
}

// Purchase runs a purchase request and returns a caller-facing result
func (s *Service) Purchase(ctx context.Context, req usecase.PurchaseRequest) (*usecase.PurchaseResult, error) {
	outcome, err := s.processor.Process(ctx, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Purchase could not be completed. Please try again later."

		switch {
		case errors.Is(err, errs.ErrBelowMinimum):
			statusCode = http.StatusUnprocessableEntity
			errorMessage = belowMinimumMessage(err)
		case errs.IsValidationError(err):
			statusCode = http.StatusBadRequest
			errorMessage = err.Error()
		}

		fields := map[string]any{
			"error":       err.Error(),
			"status_code": statusCode,
			"user_id":     req.UserID,
		}
		if statusCode == http.StatusInternalServerError {
			s.logger.Error("Purchase processing failed", fields)
		} else {
			s.logger.Info("Purchase rejected", fields)
		}

		return &usecase.PurchaseResult{
			Success:      false,
			ErrorMessage: errorMessage,
			StatusCode:   statusCode,
		}, err
	}

	s.logger.Info("Purchase completed", map[string]any{
		"transaction_id": outcome.Record.TransactionID,
		"user_id":        outcome.Record.UserID,
		"grams":          outcome.Record.GoldWeightGrams.String(),
		"medium":         string(outcome.Medium),
	})

	return &usecase.PurchaseResult{
		Success:    true,
		Record:     outcome.Record,
		Medium:     outcome.Medium,
		Message:    outcome.Message,
		StatusCode: http.StatusOK,
	}, nil
}

func belowMinimumMessage(err error) string {
	var purchaseErr *errs.PurchaseError
	if errors.As(err, &purchaseErr) && purchaseErr.Minimum != "" {
		return "Minimum purchase amount is " + purchaseErr.Minimum
	}
	return errs.ErrBelowMinimum.Error()
}
