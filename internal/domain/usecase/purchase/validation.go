package purchase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
)

// PurchaseValidator checks a purchase before anything is computed or stored
type PurchaseValidator struct {
	minimumLocal  decimal.Decimal
	localCurrency string
}

// NewPurchaseValidator creates a validator enforcing a minimum in the local currency
func NewPurchaseValidator(minimumLocal decimal.Decimal, localCurrency string) *PurchaseValidator {
	return &PurchaseValidator{
		minimumLocal:  minimumLocal,
		localCurrency: localCurrency,
	}
}

// Validate rejects an empty user, a non-positive amount, or an amount under the minimum
func (v *PurchaseValidator) Validate(userID string, amountLocal decimal.Decimal) error {
	if strings.TrimSpace(userID) == "" {
		return errs.ErrInvalidUserID
	}

	if !amountLocal.IsPositive() {
		return errs.NewPurchaseError(userID, v.format(amountLocal), "", errs.ErrInvalidAmount)
	}

	if amountLocal.LessThan(v.minimumLocal) {
		return errs.NewPurchaseError(userID, v.format(amountLocal), v.format(v.minimumLocal), errs.ErrBelowMinimum)
	}

	return nil
}

func (v *PurchaseValidator) format(amount decimal.Decimal) string {
	return entity.FormatMoney(amount) + " " + v.localCurrency
}
