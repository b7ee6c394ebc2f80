package purchase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/persistence"
)

// maxIdentifierAttempts bounds regeneration after a collision
const maxIdentifierAttempts = 3

// randomSuffix returns 8 upper-case hex characters
var randomSuffix = func() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// IdentifierGenerator issues transaction IDs that are not yet used in any known store
type IdentifierGenerator struct {
	stores []persistence.RecordStore
	logger coreport.Logger
}

// NewIdentifierGenerator checks candidates against every given store
func NewIdentifierGenerator(logger coreport.Logger, stores ...persistence.RecordStore) *IdentifierGenerator {
	unique := make([]persistence.RecordStore, 0, len(stores))
	for _, s := range stores {
		if s != nil && !containsStore(unique, s) {
			unique = append(unique, s)
		}
	}

	return &IdentifierGenerator{
		stores: unique,
		logger: logger,
	}
}

// Next returns a fresh identifier such as TXN-9F86D081
func (g *IdentifierGenerator) Next(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= maxIdentifierAttempts; attempt++ {
		candidate := entity.TransactionIDPrefix + randomSuffix()
		if !g.taken(ctx, candidate) {
			return candidate, nil
		}

		g.logger.Warn("Transaction ID collision, regenerating", map[string]any{
			"transaction_id": candidate,
			"attempt":        attempt,
		})
	}

	return "", fmt.Errorf("%w: no unique transaction ID after %d attempts", errs.ErrUnexpected, maxIdentifierAttempts)
}

// taken treats a store that cannot answer as not holding the candidate
func (g *IdentifierGenerator) taken(ctx context.Context, candidate string) bool {
	for _, store := range g.stores {
		exists, err := store.TransactionExists(ctx, candidate)
		if err != nil {
			g.logger.Debug("Skipping uniqueness check on unavailable store", map[string]any{
				"store": store.Name(),
				"error": err.Error(),
			})
			continue
		}
		if exists {
			return true
		}
	}
	return false
}

func containsStore(stores []persistence.RecordStore, s persistence.RecordStore) bool {
	for _, existing := range stores {
		if existing == s {
			return true
		}
	}
	return false
}
