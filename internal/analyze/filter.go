// Package analyze computes the financial metrics over normalized
// transactions: filtering, aggregate summaries, monthly rollups, signed
// per-type breakdowns and the per-currency report composition.
package analyze

import (
	"strings"
	"time"

	"github.com/rocjay1/cashier-analyzer/internal/models"
)

// Filter returns the transactions inside the given bounds. from is inclusive
// at midnight; to covers its entire calendar day (exclusive bound at midnight
// of the following day). The currency match is case-insensitive. A nil bound
// or empty currency means no restriction on that axis. The input slice is
// never mutated.
func Filter(txs []models.Transaction, from, to *time.Time, currency string) []models.Transaction {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	var fromBound, toBound time.Time
	if from != nil {
		fromBound = midnight(*from)
	}
	if to != nil {
		toBound = midnight(*to).AddDate(0, 0, 1)
	}

	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if from != nil && tx.Date.Before(fromBound) {
			continue
		}
		if to != nil && !tx.Date.Before(toBound) {
			continue
		}
		if currency != "" && tx.Currency != currency {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
