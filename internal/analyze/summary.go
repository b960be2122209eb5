package analyze

import (
	"sort"

	"github.com/rocjay1/cashier-analyzer/internal/models"
	"github.com/shopspring/decimal"
)

// Summarize sums absolute amounts per category and derives the financial
// metrics. Transactions carrying a category outside the canonical set are
// folded into unknown. The empty input yields the all-zero summary.
func Summarize(txs []models.Transaction) models.Summary {
	totals := make(map[models.Category]decimal.Decimal, len(models.Categories))
	for _, c := range models.Categories {
		totals[c] = decimal.Zero
	}

	for _, tx := range txs {
		cat := tx.Category
		if _, ok := totals[cat]; !ok {
			cat = models.CategoryUnknown
		}
		totals[cat] = totals[cat].Add(tx.Amount)
	}

	s := models.Summary{
		Deposits:    totals[models.CategoryDeposit],
		Withdrawals: totals[models.CategoryWithdrawal],
		Buyins:      totals[models.CategoryBuyin],
		Payouts:     totals[models.CategoryPayout],
		Rakeback:    totals[models.CategoryRakeback],
		Bonus:       totals[models.CategoryBonus],
		Fee:         totals[models.CategoryFee],
		Unknown:     totals[models.CategoryUnknown],
	}

	s.NetCashflow = s.Deposits.Sub(s.Withdrawals)
	s.GameResult = s.Payouts.Sub(s.Buyins)
	s.TotalProfit = s.GameResult.Add(s.Rakeback).Add(s.Bonus)
	s.Effective = s.TotalProfit.Sub(s.Fee)
	return s
}

// Monthly partitions transactions by calendar month, summarizes each
// partition and returns the derived metrics in ascending (year, month) order.
// Raw category totals are not exposed at monthly granularity.
func Monthly(txs []models.Transaction) []models.MonthlyRow {
	type period struct {
		year, month int
	}

	byMonth := make(map[period][]models.Transaction)
	for _, tx := range txs {
		key := period{tx.Date.Year(), int(tx.Date.Month())}
		byMonth[key] = append(byMonth[key], tx)
	}

	keys := make([]period, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	rows := make([]models.MonthlyRow, 0, len(keys))
	for _, k := range keys {
		s := Summarize(byMonth[k])
		rows = append(rows, models.MonthlyRow{
			Year:        k.year,
			Month:       k.month,
			NetCashflow: s.NetCashflow,
			GameResult:  s.GameResult,
			TotalProfit: s.TotalProfit,
			Effective:   s.Effective,
		})
	}
	return rows
}

// ByType returns the signed per-category totals. Withdrawals, buy-ins and
// fees are negated; deposits, payouts, rakeback and bonuses stay positive.
// Unknown contributes zero regardless of volume; see the TypeBreakdown doc
// for why that hole is deliberate.
func ByType(txs []models.Transaction) models.TypeBreakdown {
	breakdown := make(models.TypeBreakdown)
	for _, tx := range txs {
		var signed decimal.Decimal
		switch tx.Category {
		case models.CategoryWithdrawal, models.CategoryBuyin, models.CategoryFee:
			signed = tx.Amount.Neg()
		case models.CategoryDeposit, models.CategoryPayout, models.CategoryRakeback, models.CategoryBonus:
			signed = tx.Amount
		default:
			signed = decimal.Zero
		}
		breakdown[tx.Category] = breakdown[tx.Category].Add(signed)
	}
	return breakdown
}
