package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category represents the canonical kind of a cashier transaction.
type Category string

const (
	CategoryDeposit    Category = "deposit"
	CategoryWithdrawal Category = "withdrawal"
	CategoryBuyin      Category = "buyin"
	CategoryPayout     Category = "payout"
	CategoryRakeback   Category = "rakeback"
	CategoryBonus      Category = "bonus"
	CategoryFee        Category = "fee"
	CategoryUnknown    Category = "unknown"
)

// Categories lists every canonical category in report order.
var Categories = []Category{
	CategoryDeposit,
	CategoryWithdrawal,
	CategoryBuyin,
	CategoryPayout,
	CategoryRakeback,
	CategoryBonus,
	CategoryFee,
	CategoryUnknown,
}

// RawRecord is one untyped export row keyed by column name. It only lives
// long enough to be normalized.
type RawRecord map[string]string

// Transaction is one normalized cashier entry. Amount is always the absolute
// magnitude; the direction of money is carried by Category, never by the sign.
// A Transaction is built once from a raw export row and not mutated afterwards.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	RawCategory string          `json:"raw_category"` // original type text, kept for diagnostics
}
