package model

import (
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
)

// FromProfile converts a profile entity to its row
func FromProfile(p *entity.UserProfile) *UserProfile {
	return &UserProfile{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		Email:       p.Email,
		LastUpdated: p.LastUpdated,
	}
}

// ToEntity converts the row back to a profile entity
func (m *UserProfile) ToEntity() *entity.UserProfile {
	return &entity.UserProfile{
		UserID:      m.UserID,
		DisplayName: m.DisplayName,
		Email:       m.Email,
		LastUpdated: m.LastUpdated,
	}
}

// FromRecord converts a transaction record entity to its row
func FromRecord(r *entity.TransactionRecord) *GoldTransaction {
	return &GoldTransaction{
		TransactionID:            r.TransactionID,
		UserID:                   r.UserID,
		DisplayName:              r.DisplayName,
		Email:                    r.Email,
		GoldWeightGrams:          r.GoldWeightGrams,
		AmountPaidBase:           r.AmountPaidBase,
		AmountPaidLocal:          r.AmountPaidLocal,
		TaxAmount:                r.TaxAmount,
		TotalWithTax:             r.TotalWithTax,
		UnitPriceLocalAtPurchase: r.UnitPriceLocalAtPurchase,
		TaxRate:                  r.TaxRate,
		Currency:                 r.Currency,
		Status:                   string(r.Status),
		Timestamp:                r.Timestamp,
	}
}

// ToEntity converts the row back to a transaction record entity
func (m *GoldTransaction) ToEntity() *entity.TransactionRecord {
	return &entity.TransactionRecord{
		UserID:                   m.UserID,
		DisplayName:              m.DisplayName,
		Email:                    m.Email,
		TransactionID:            m.TransactionID,
		GoldWeightGrams:          m.GoldWeightGrams,
		AmountPaidBase:           m.AmountPaidBase,
		AmountPaidLocal:          m.AmountPaidLocal,
		TaxAmount:                m.TaxAmount,
		TotalWithTax:             m.TotalWithTax,
		UnitPriceLocalAtPurchase: m.UnitPriceLocalAtPurchase,
		TaxRate:                  m.TaxRate,
		Timestamp:                m.Timestamp,
		Status:                   entity.TransactionStatus(m.Status),
		Currency:                 m.Currency,
	}
}
