package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyReport is the presentation-ready result for one currency partition.
// Monthly and ByType are nil unless those breakdowns were requested.
type CurrencyReport struct {
	Currency string          `json:"currency"`
	Summary  Summary         `json:"summary"`
	Monthly  []MonthlyRow    `json:"monthly,omitempty"`
	ByType   TypeBreakdown   `json:"by_type,omitempty"`
	Unknown  decimal.Decimal `json:"unknown_total"`

	// Effective date range: explicit bounds when given, otherwise the min/max
	// transaction date observed in this partition.
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}
