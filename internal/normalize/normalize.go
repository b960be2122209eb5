// Package normalize converts raw export rows into canonical transactions.
package normalize

import (
	"log/slog"
	"strings"

	"github.com/rocjay1/cashier-analyzer/internal/classify"
	"github.com/rocjay1/cashier-analyzer/internal/mapping"
	"github.com/rocjay1/cashier-analyzer/internal/models"
	"github.com/rocjay1/cashier-analyzer/internal/parse"
)

// Rows normalizes raw records into transactions. A row is skipped (counted,
// never raised as an error) when its date or amount cannot be parsed or its
// currency is empty after trimming. Amounts are stored as absolute values;
// the sign of an operation is carried by the category. Bad upstream export
// tooling is common, so skipping is the deliberate policy here.
func Rows(records []models.RawRecord, m mapping.FieldMapping, clf *classify.Classifier) ([]models.Transaction, int) {
	txs := make([]models.Transaction, 0, len(records))
	skipped := 0

	for _, rec := range records {
		rawDate := rec[m[mapping.FieldDate]]
		rawType := rec[m[mapping.FieldType]]
		rawAmount := rec[m[mapping.FieldAmount]]
		rawCurrency := rec[m[mapping.FieldCurrency]]
		desc := rec[m[mapping.FieldDescription]]

		date, dateOK := parse.Date(rawDate)
		amount, amountOK := parse.Amount(rawAmount)
		currency := strings.ToUpper(strings.TrimSpace(rawCurrency))

		if !dateOK || !amountOK || currency == "" {
			skipped++
			continue
		}

		txs = append(txs, models.Transaction{
			Date:        date,
			Category:    clf.Classify(rawType),
			Amount:      amount.Abs(),
			Currency:    currency,
			Description: desc,
			RawCategory: rawType,
		})
	}

	if skipped > 0 {
		slog.Warn("skipped unparseable rows", "skipped", skipped, "total", len(records))
	}
	return txs, skipped
}
