package analyze

import (
	"testing"
	"time"

	"github.com/rocjay1/cashier-analyzer/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_MultiCurrencyIsIndependent(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-01-05", models.CategoryDeposit, "100.00", "USD"),
		tx("2024-01-10", models.CategoryBuyin, "20.00", "USD"),
		tx("2024-01-20", models.CategoryPayout, "35.00", "EUR"),
	}

	reports := Compose(txs, ComposeOptions{})
	require.Len(t, reports, 2)

	// Sorted by currency code.
	assert.Equal(t, "EUR", reports[0].Currency)
	assert.Equal(t, "USD", reports[1].Currency)

	eur, usd := reports[0], reports[1]
	assert.True(t, eur.Summary.Payouts.Equal(decimal.NewFromInt(35)))
	assert.True(t, eur.Summary.Deposits.IsZero(), "EUR report must not see USD rows")
	assert.True(t, usd.Summary.Deposits.Equal(decimal.NewFromInt(100)))
	assert.True(t, usd.Summary.Payouts.IsZero(), "USD report must not see EUR rows")
}

func TestCompose_ObservedDateRange(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-01-10", models.CategoryDeposit, "10", "USD"),
		tx("2024-03-02", models.CategoryPayout, "20", "USD"),
		tx("2024-02-01", models.CategoryBuyin, "5", "USD"),
	}

	reports := Compose(txs, ComposeOptions{})
	require.Len(t, reports, 1)

	r := reports[0]
	require.NotNil(t, r.From)
	require.NotNil(t, r.To)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *r.From)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), *r.To)
}

func TestCompose_ExplicitBoundsWin(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-01-10", models.CategoryDeposit, "10", "USD"),
	}
	from := datePtr("2024-01-01")
	to := datePtr("2024-12-31")

	reports := Compose(txs, ComposeOptions{From: from, To: to})
	require.Len(t, reports, 1)
	assert.Equal(t, *from, *reports[0].From)
	assert.Equal(t, *to, *reports[0].To)
}

func TestCompose_PartialBoundsMixWithObserved(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-01-10", models.CategoryDeposit, "10", "USD"),
		tx("2024-02-15", models.CategoryPayout, "20", "USD"),
	}
	from := datePtr("2024-01-01")

	reports := Compose(txs, ComposeOptions{From: from})
	require.Len(t, reports, 1)
	assert.Equal(t, *from, *reports[0].From)
	require.NotNil(t, reports[0].To)
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), *reports[0].To)
}

func TestCompose_OptionalSections(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-01-05", models.CategoryDeposit, "100", "USD"),
		tx("2024-01-24", models.CategoryUnknown, "7", "USD"),
	}

	plain := Compose(txs, ComposeOptions{})[0]
	assert.Nil(t, plain.Monthly)
	assert.Nil(t, plain.ByType)
	assert.True(t, plain.Unknown.Equal(decimal.NewFromInt(7)), "unknown total surfaced even without by-type view")

	full := Compose(txs, ComposeOptions{Monthly: true, ByType: true})[0]
	assert.Len(t, full.Monthly, 1)
	assert.NotNil(t, full.ByType)
	assert.True(t, full.ByType[models.CategoryUnknown].IsZero())
}

func TestCompose_Empty(t *testing.T) {
	assert.Empty(t, Compose(nil, ComposeOptions{}))
}
