package analyze

import (
	"testing"

	"github.com/rocjay1/cashier-analyzer/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_Scenario(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-01-05", models.CategoryDeposit, "100.00", "USD"),
		tx("2024-01-10", models.CategoryBuyin, "20.00", "USD"),
		tx("2024-01-20", models.CategoryPayout, "35.00", "USD"),
	}

	s := Summarize(txs)

	assert.True(t, s.Deposits.Equal(decimal.NewFromInt(100)), "deposits")
	assert.True(t, s.Buyins.Equal(decimal.NewFromInt(20)), "buyins")
	assert.True(t, s.Payouts.Equal(decimal.NewFromInt(35)), "payouts")
	assert.True(t, s.NetCashflow.Equal(decimal.NewFromInt(100)), "net cashflow")
	assert.True(t, s.GameResult.Equal(decimal.NewFromInt(15)), "game result")
	assert.True(t, s.TotalProfit.Equal(decimal.NewFromInt(15)), "total profit")
	assert.True(t, s.Effective.Equal(decimal.NewFromInt(15)), "effective")
}

func TestSummarize_DerivedIdentities(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-01-05", models.CategoryDeposit, "100", "USD"),
		tx("2024-01-06", models.CategoryWithdrawal, "40", "USD"),
		tx("2024-01-10", models.CategoryBuyin, "20", "USD"),
		tx("2024-01-20", models.CategoryPayout, "35", "USD"),
		tx("2024-01-21", models.CategoryRakeback, "5", "USD"),
		tx("2024-01-22", models.CategoryBonus, "2.50", "USD"),
		tx("2024-01-23", models.CategoryFee, "1.25", "USD"),
		tx("2024-01-24", models.CategoryUnknown, "99", "USD"),
	}

	s := Summarize(txs)

	assert.True(t, s.NetCashflow.Equal(s.Deposits.Sub(s.Withdrawals)))
	assert.True(t, s.GameResult.Equal(s.Payouts.Sub(s.Buyins)))
	assert.True(t, s.TotalProfit.Equal(s.GameResult.Add(s.Rakeback).Add(s.Bonus)))
	assert.True(t, s.Effective.Equal(s.TotalProfit.Sub(s.Fee)))
	assert.True(t, s.Unknown.Equal(decimal.NewFromInt(99)), "unknown volume still reported in summary")
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.True(t, s.Deposits.IsZero())
	assert.True(t, s.NetCashflow.IsZero())
	assert.True(t, s.TotalProfit.IsZero())
	assert.True(t, s.Effective.IsZero())
}

func TestSummarize_OutOfSetCategoryFoldsToUnknown(t *testing.T) {
	txs := []models.Transaction{
		{Date: tx("2024-01-05", "", "1", "USD").Date, Category: models.Category("jackpot"), Amount: decimal.NewFromInt(7), Currency: "USD"},
	}

	s := Summarize(txs)
	assert.True(t, s.Unknown.Equal(decimal.NewFromInt(7)))
}

func TestMonthly_OrderAndRollup(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-03-05", models.CategoryDeposit, "50", "USD"),
		tx("2024-01-05", models.CategoryDeposit, "100", "USD"),
		tx("2024-01-10", models.CategoryBuyin, "20", "USD"),
		tx("2024-02-20", models.CategoryPayout, "35", "USD"),
		tx("2024-02-21", models.CategoryFee, "5", "USD"),
	}

	rows := Monthly(txs)

	assert.Len(t, rows, 3)
	assert.Equal(t, 1, rows[0].Month)
	assert.Equal(t, 2, rows[1].Month)
	assert.Equal(t, 3, rows[2].Month)

	// Summing each derived metric across months must equal the whole-period
	// summary.
	whole := Summarize(txs)
	net, game, profit, eff := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range rows {
		net = net.Add(r.NetCashflow)
		game = game.Add(r.GameResult)
		profit = profit.Add(r.TotalProfit)
		eff = eff.Add(r.Effective)
	}
	assert.True(t, net.Equal(whole.NetCashflow), "net: %s vs %s", net, whole.NetCashflow)
	assert.True(t, game.Equal(whole.GameResult), "game: %s vs %s", game, whole.GameResult)
	assert.True(t, profit.Equal(whole.TotalProfit), "profit: %s vs %s", profit, whole.TotalProfit)
	assert.True(t, eff.Equal(whole.Effective), "effective: %s vs %s", eff, whole.Effective)
}

func TestMonthly_Empty(t *testing.T) {
	assert.Empty(t, Monthly(nil))
}

func TestByType_SignPolicy(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-01-05", models.CategoryDeposit, "100", "USD"),
		tx("2024-01-06", models.CategoryWithdrawal, "40", "USD"),
		tx("2024-01-10", models.CategoryBuyin, "20", "USD"),
		tx("2024-01-20", models.CategoryPayout, "35", "USD"),
		tx("2024-01-23", models.CategoryFee, "1.25", "USD"),
		tx("2024-01-24", models.CategoryUnknown, "99", "USD"),
	}

	b := ByType(txs)

	assert.True(t, b[models.CategoryDeposit].Equal(decimal.NewFromInt(100)))
	assert.True(t, b[models.CategoryWithdrawal].Equal(decimal.NewFromInt(-40)))
	assert.True(t, b[models.CategoryBuyin].Equal(decimal.NewFromInt(-20)))
	assert.True(t, b[models.CategoryPayout].Equal(decimal.NewFromInt(35)))
	assert.True(t, b[models.CategoryFee].Equal(decimal.RequireFromString("-1.25")))
	assert.True(t, b[models.CategoryUnknown].IsZero(), "unknown contributes zero by policy")
}
