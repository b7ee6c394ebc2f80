package purchase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

// Settings holds the purchase rules
type Settings struct {
	TaxRate      decimal.Decimal
	MinimumLocal decimal.Decimal
}

// Outcome is a completed purchase together with where it was stored
type Outcome struct {
	Record  *entity.TransactionRecord
	Medium  usecase.PersistenceMedium
	Message string
}

// TransactionProcessor runs a purchase from amount resolution to confirmation
type TransactionProcessor struct {
	oracle       usecase.PriceOracle
	validator    *PurchaseValidator
	identifier   *IdentifierGenerator
	primary      persistence.RecordStore
	fallback     persistence.RecordStore
	settings     Settings
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTransactionProcessor creates a new TransactionProcessor.
// primary may be the same store as fallback when no durable backend is configured.
func NewTransactionProcessor(
	oracle usecase.PriceOracle,
	validator *PurchaseValidator,
	identifier *IdentifierGenerator,
	primary persistence.RecordStore,
	fallback persistence.RecordStore,
	settings Settings,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *TransactionProcessor {
	return &TransactionProcessor{
		oracle:       oracle,
		validator:    validator,
		identifier:   identifier,
		primary:      primary,
		fallback:     fallback,
		settings:     settings,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Process handles a purchase:
// 1. Resolves the amount in both currencies
// 2. Validates it against the minimum
// 3. Computes weight and tax
// 4. Issues a unique transaction ID
// 5. Stores the record, falling back to memory when the durable store fails
func (p *TransactionProcessor) Process(ctx context.Context, req usecase.PurchaseRequest) (*Outcome, error) {
	quote := p.oracle.Quote()

	// Step 1: Resolve amounts
	amountLocal, amountBase := resolveAmounts(req, quote)

	// Step 2: Validate
	if err := p.validator.Validate(req.UserID, amountLocal); err != nil {
		return nil, fmt.Errorf("invalid purchase: %w", err)
	}

	profile, err := entity.NewUserProfile(req.UserID, req.DisplayName, req.Email, p.timeProvider)
	if err != nil {
		return nil, fmt.Errorf("invalid purchase: %w", err)
	}

	// Step 3: Price the purchase
	breakdown := p.price(amountBase, amountLocal, quote)

	// Step 4: Issue an identifier
	transactionID, err := p.identifier.Next(ctx)
	if err != nil {
		return nil, err
	}

	record := entity.NewTransactionRecord(*profile, transactionID, breakdown, p.timeProvider.Now())

	// Step 5: Persist
	medium, err := p.persist(ctx, profile, record)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnexpected, err)
	}

	return &Outcome{
		Record:  record,
		Medium:  medium,
		Message: confirmation(record, medium, quote),
	}, nil
}

// resolveAmounts prefers an explicit local amount. The base amount paid always agrees with
// the local amount: it is the caller's value only when no local amount is given.
func resolveAmounts(req usecase.PurchaseRequest, quote entity.PriceQuote) (decimal.Decimal, decimal.Decimal) {
	if !req.AmountLocal.Valid {
		return quote.ToLocal(req.AmountBase), req.AmountBase
	}

	amountLocal := req.AmountLocal.Decimal
	return amountLocal, entity.RoundMoney(quote.ToBase(amountLocal))
}

func (p *TransactionProcessor) price(
	amountBase decimal.Decimal,
	amountLocal decimal.Decimal,
	quote entity.PriceQuote,
) entity.PurchaseBreakdown {
	taxAmount := amountLocal.Mul(p.settings.TaxRate)

	return entity.PurchaseBreakdown{
		AmountBase:      amountBase,
		AmountLocal:     amountLocal,
		GoldWeightGrams: entity.RoundWeight(quote.GramsFor(amountLocal)),
		TaxRate:         p.settings.TaxRate,
		TaxAmount:       taxAmount,
		TotalWithTax:    amountLocal.Add(taxAmount),
		UnitPriceLocal:  quote.UnitPriceLocal,
		Currency:        quote.LocalCurrency,
	}
}

// persist returns an error only when the fallback store also rejects the record
func (p *TransactionProcessor) persist(
	ctx context.Context,
	profile *entity.UserProfile,
	record *entity.TransactionRecord,
) (usecase.PersistenceMedium, error) {
	if p.primary != nil && p.primary != p.fallback {
		durableErr := p.write(ctx, p.primary, profile, record)
		if durableErr == nil {
			return usecase.MediumDurable, nil
		}

		fields := map[string]any{
			"transaction_id": record.TransactionID,
			"user_id":        record.UserID,
			"store":          p.primary.Name(),
			"error":          durableErr.Error(),
		}
		p.logger.Warn("Durable store write failed, recording purchase in fallback store", fields)
	}

	if err := p.write(ctx, p.fallback, profile, record); err != nil {
		p.logger.Error("Fallback store write failed", map[string]any{
			"transaction_id": record.TransactionID,
			"user_id":        record.UserID,
			"error":          err.Error(),
		})
		return "", err
	}

	return usecase.MediumFallback, nil
}

func (p *TransactionProcessor) write(
	ctx context.Context,
	store persistence.RecordStore,
	profile *entity.UserProfile,
	record *entity.TransactionRecord,
) error {
	if err := store.Ping(ctx); err != nil {
		return asPersistenceError(store, "ping", err)
	}
	if err := store.UpsertUserProfile(ctx, profile); err != nil {
		return asPersistenceError(store, "upsert_user_profile", err)
	}
	if err := store.AppendTransaction(ctx, record); err != nil {
		return asPersistenceError(store, "append_transaction", err)
	}
	return nil
}

func asPersistenceError(store persistence.RecordStore, operation string, err error) error {
	if errs.IsPersistenceError(err) {
		return err
	}
	return errs.NewBackendError(errs.ErrPersistenceBackend, store.Name(), operation, err)
}

func confirmation(record *entity.TransactionRecord, medium usecase.PersistenceMedium, quote entity.PriceQuote) string {
	message := fmt.Sprintf(
		"Congratulations! You have successfully purchased %s grams of digital gold for %s %s (%s %s). Transaction ID: %s",
		entity.FormatWeight(record.GoldWeightGrams),
		entity.FormatMoney(record.AmountPaidLocal),
		quote.LocalCurrency,
		entity.FormatMoney(record.AmountPaidBase),
		quote.BaseCurrency,
		record.TransactionID,
	)
	if medium == usecase.MediumFallback {
		message += ". Your purchase is held in temporary storage for now."
	}
	return message
}
