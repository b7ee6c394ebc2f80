package dto

import (
	"time"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

// ProfileResponse is the stored contact data of a user
type ProfileResponse struct {
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// TransactionResponse is one stored purchase
type TransactionResponse struct {
	TransactionID            string    `json:"transactionId"`
	GoldWeightGrams          float64   `json:"goldWeightGrams"`
	AmountPaidBaseCurrency   float64   `json:"amountPaidBaseCurrency"`
	AmountPaidLocalCurrency  float64   `json:"amountPaidLocalCurrency"`
	TaxAmount                float64   `json:"taxAmount"`
	TotalWithTax             float64   `json:"totalWithTax"`
	UnitPriceLocalAtPurchase float64   `json:"unitPriceLocalCurrencyAtPurchase"`
	TaxRate                  float64   `json:"taxRate"`
	Timestamp                time.Time `json:"timestamp"`
	Status                   string    `json:"status"`
	Currency                 string    `json:"currency"`
}

// UserRecordsResponse represents the API response for GET /users/:userId
type UserRecordsResponse struct {
	UserID       string                `json:"userId"`
	Profile      *ProfileResponse      `json:"profile"`
	Transactions []TransactionResponse `json:"transactions"`
}

// UserSummary is one entry of the user listing
type UserSummary struct {
	UserID       string                `json:"userId"`
	DisplayName  string                `json:"displayName"`
	Email        string                `json:"email"`
	Transactions []TransactionResponse `json:"transactions"`
}

// UserListResponse represents the API response for GET /users
type UserListResponse struct {
	TotalUsers int           `json:"totalUsers"`
	Users      []UserSummary `json:"users"`
}

// NewUserRecordsResponse maps the records of one user
func NewUserRecordsResponse(records *usecase.UserRecords) UserRecordsResponse {
	resp := UserRecordsResponse{
		UserID:       records.UserID,
		Transactions: newTransactionResponses(records.Transactions),
	}
	if records.Profile != nil {
		resp.Profile = &ProfileResponse{
			UserID:      records.Profile.UserID,
			DisplayName: records.Profile.DisplayName,
			Email:       records.Profile.Email,
			LastUpdated: records.Profile.LastUpdated,
		}
	}
	return resp
}

// NewUserListResponse maps the grouped records of every user.
// Contact data falls back to the latest transaction when no profile is stored.
func NewUserListResponse(users []usecase.UserRecords) UserListResponse {
	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summary := UserSummary{
			UserID:       u.UserID,
			Transactions: newTransactionResponses(u.Transactions),
		}
		switch {
		case u.Profile != nil:
			summary.DisplayName = u.Profile.DisplayName
			summary.Email = u.Profile.Email
		case len(u.Transactions) > 0:
			latest := u.Transactions[len(u.Transactions)-1]
			summary.DisplayName = latest.DisplayName
			summary.Email = latest.Email
		}
		summaries = append(summaries, summary)
	}

	return UserListResponse{
		TotalUsers: len(summaries),
		Users:      summaries,
	}
}

func newTransactionResponses(records []*entity.TransactionRecord) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(records))
	for _, r := range records {
		out = append(out, TransactionResponse{
			TransactionID:            r.TransactionID,
			GoldWeightGrams:          r.GoldWeightGrams.InexactFloat64(),
			AmountPaidBaseCurrency:   r.AmountPaidBase.InexactFloat64(),
			AmountPaidLocalCurrency:  r.AmountPaidLocal.InexactFloat64(),
			TaxAmount:                r.TaxAmount.InexactFloat64(),
			TotalWithTax:             r.TotalWithTax.InexactFloat64(),
			UnitPriceLocalAtPurchase: r.UnitPriceLocalAtPurchase.InexactFloat64(),
			TaxRate:                  r.TaxRate.InexactFloat64(),
			Timestamp:                r.Timestamp,
			Status:                   string(r.Status),
			Currency:                 r.Currency,
		})
	}
	return out
}
