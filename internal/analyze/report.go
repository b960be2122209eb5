package analyze

import (
	"sort"
	"time"

	"github.com/rocjay1/cashier-analyzer/internal/models"
)

// ComposeOptions selects the optional report sections and carries the
// explicit date bounds from the CLI, if any.
type ComposeOptions struct {
	Monthly bool
	ByType  bool
	From    *time.Time
	To      *time.Time
}

// Compose partitions the (already filtered) transactions by currency and
// builds one independent report per partition, sorted by currency code.
// Currencies are never aggregated or converted across partitions. The
// effective date range prefers the explicit bounds; absent those it falls
// back to the min/max transaction date observed within the partition.
func Compose(txs []models.Transaction, opts ComposeOptions) []models.CurrencyReport {
	byCurrency := make(map[string][]models.Transaction)
	for _, tx := range txs {
		byCurrency[tx.Currency] = append(byCurrency[tx.Currency], tx)
	}

	currencies := make([]string, 0, len(byCurrency))
	for cur := range byCurrency {
		currencies = append(currencies, cur)
	}
	sort.Strings(currencies)

	reports := make([]models.CurrencyReport, 0, len(currencies))
	for _, cur := range currencies {
		part := byCurrency[cur]
		summary := Summarize(part)

		report := models.CurrencyReport{
			Currency: cur,
			Summary:  summary,
			Unknown:  summary.Unknown,
			From:     opts.From,
			To:       opts.To,
		}

		if report.From == nil || report.To == nil {
			minDate, maxDate := observedRange(part)
			if report.From == nil {
				report.From = minDate
			}
			if report.To == nil {
				report.To = maxDate
			}
		}

		if opts.Monthly {
			report.Monthly = Monthly(part)
		}
		if opts.ByType {
			report.ByType = ByType(part)
		}

		reports = append(reports, report)
	}
	return reports
}

func observedRange(txs []models.Transaction) (*time.Time, *time.Time) {
	if len(txs) == 0 {
		return nil, nil
	}
	minDate, maxDate := txs[0].Date, txs[0].Date
	for _, tx := range txs[1:] {
		if tx.Date.Before(minDate) {
			minDate = tx.Date
		}
		if tx.Date.After(maxDate) {
			maxDate = tx.Date
		}
	}
	return &minDate, &maxDate
}
