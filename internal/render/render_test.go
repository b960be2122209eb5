package render

import (
	"strings"
	"testing"
	"time"

	"github.com/rocjay1/cashier-analyzer/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleReport() models.CurrencyReport {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	return models.CurrencyReport{
		Currency: "USD",
		Summary: models.Summary{
			Deposits:    decimal.NewFromInt(100),
			Withdrawals: decimal.NewFromInt(40),
			NetCashflow: decimal.NewFromInt(60),
			TotalProfit: decimal.NewFromInt(15),
			Effective:   decimal.NewFromInt(15),
		},
		Unknown: decimal.NewFromInt(7),
		From:    &from,
		To:      &to,
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "+100.00", Money(decimal.NewFromInt(100)))
	assert.Equal(t, "-40.50", Money(decimal.RequireFromString("-40.5")))
	assert.Equal(t, "+0.00", Money(decimal.Zero))
}

func TestSummary(t *testing.T) {
	out := NewPlain().Summary(sampleReport())

	assert.Contains(t, out, "=== CASHIER SUMMARY ===")
	assert.Contains(t, out, "2024-01-01 .. 2024-03-31")
	assert.Contains(t, out, "Currency: USD")
	assert.Contains(t, out, "+100.00")
	// Withdrawals are displayed negated.
	assert.Contains(t, out, "-40.00")
	assert.NotContains(t, out, "\033[", "plain renderer must not emit ANSI codes")
}

func TestSummary_NoRange(t *testing.T) {
	r := sampleReport()
	r.From, r.To = nil, nil
	out := NewPlain().Summary(r)
	assert.Contains(t, out, "all available data")
}

func TestMonthly(t *testing.T) {
	rows := []models.MonthlyRow{
		{Year: 2024, Month: 1, NetCashflow: decimal.NewFromInt(60), Effective: decimal.NewFromInt(15)},
	}
	out := NewPlain().Monthly(rows)

	assert.Contains(t, out, "2024-01")
	assert.Contains(t, out, "+60.00")
	assert.Equal(t, "No data for monthly stats.\n", NewPlain().Monthly(nil))
}

func TestByType(t *testing.T) {
	b := models.TypeBreakdown{
		models.CategoryDeposit: decimal.NewFromInt(100),
		models.CategoryBuyin:   decimal.NewFromInt(-20),
	}
	out := NewPlain().ByType(b)

	assert.Contains(t, out, "deposit")
	assert.Contains(t, out, "-20.00")
	// Sorted by category name: buyin before deposit.
	assert.Less(t, strings.Index(out, "buyin"), strings.Index(out, "deposit"))
}

func TestUnknown(t *testing.T) {
	out := NewPlain().Unknown(sampleReport())
	assert.Contains(t, out, "7.00")

	r := sampleReport()
	r.Unknown = decimal.Zero
	assert.Empty(t, NewPlain().Unknown(r))
}
