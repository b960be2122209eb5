package models

import (
	"github.com/shopspring/decimal"
)

// Summary holds the aggregate totals for one currency's transactions.
// The first eight fields are raw per-category sums of absolute amounts;
// the last four are derived from them.
type Summary struct {
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Buyins      decimal.Decimal `json:"buyins"`
	Payouts     decimal.Decimal `json:"payouts"`
	Rakeback    decimal.Decimal `json:"rakeback"`
	Bonus       decimal.Decimal `json:"bonus"`
	Fee         decimal.Decimal `json:"fee"`
	Unknown     decimal.Decimal `json:"unknown"`

	NetCashflow decimal.Decimal `json:"net_cashflow"` // Deposits - Withdrawals
	GameResult  decimal.Decimal `json:"game_result"`  // Payouts - Buyins
	TotalProfit decimal.Decimal `json:"total_profit"` // GameResult + Rakeback + Bonus
	Effective   decimal.Decimal `json:"effective"`    // TotalProfit - Fee
}

// MonthlyRow carries the four derived metrics for one calendar month.
type MonthlyRow struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	NetCashflow decimal.Decimal `json:"net_cashflow"`
	GameResult  decimal.Decimal `json:"game_result"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	Effective   decimal.Decimal `json:"effective"`
}

// TypeBreakdown maps each category seen in the data to its signed total.
// Withdrawals, buy-ins and fees are negated; deposits, payouts, rakeback and
// bonuses stay positive. Unknown always contributes zero here, which hides any
// unknown volume from this view on purpose. The Summary still reports it, and
// CurrencyReport.UnknownTotal surfaces it explicitly.
type TypeBreakdown map[Category]decimal.Decimal
