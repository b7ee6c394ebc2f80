package dto

import (
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

// PurchaseRequest represents the API request for buying digital gold.
// Amounts accept JSON numbers or numeric strings.
type PurchaseRequest struct {
	UserID              string              `json:"userId"`
	DisplayName         string              `json:"displayName"`
	Email               string              `json:"email"`
	AmountBaseCurrency  decimal.Decimal     `json:"amountBaseCurrency"`
	AmountLocalCurrency decimal.NullDecimal `json:"amountLocalCurrency"`
}

// ToUseCase maps the request onto the purchase use case input
func (r PurchaseRequest) ToUseCase() usecase.PurchaseRequest {
	return usecase.PurchaseRequest{
		UserID:      r.UserID,
		DisplayName: r.DisplayName,
		Email:       r.Email,
		AmountBase:  r.AmountBaseCurrency,
		AmountLocal: r.AmountLocalCurrency,
	}
}

// PurchaseResponse represents the API response for a completed purchase
type PurchaseResponse struct {
	Success         bool    `json:"success"`
	TransactionID   string  `json:"transactionId"`
	GoldWeightGrams float64 `json:"goldWeightGrams"`
	TotalCostBase   float64 `json:"totalCostBase"`
	AmountLocal     float64 `json:"amountLocal"`
	TaxAmount       float64 `json:"taxAmount"`
	TotalWithTax    float64 `json:"totalWithTax"`
	Currency        string  `json:"currency"`
	Storage         string  `json:"storage"`
	Message         string  `json:"message"`
}

// NewPurchaseResponse maps a successful purchase result
func NewPurchaseResponse(result *usecase.PurchaseResult) PurchaseResponse {
	record := result.Record
	return PurchaseResponse{
		Success:         result.Success,
		TransactionID:   record.TransactionID,
		GoldWeightGrams: record.GoldWeightGrams.InexactFloat64(),
		TotalCostBase:   record.AmountPaidBase.InexactFloat64(),
		AmountLocal:     record.AmountPaidLocal.InexactFloat64(),
		TaxAmount:       record.TaxAmount.InexactFloat64(),
		TotalWithTax:    record.TotalWithTax.InexactFloat64(),
		Currency:        record.Currency,
		Storage:         string(result.Medium),
		Message:         result.Message,
	}
}
