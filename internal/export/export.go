// Package export writes currency reports to CSV files. Every monetary figure
// is written with an explicit sign and two decimals so exports are unambiguous
// when re-imported into spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rocjay1/cashier-analyzer/internal/models"
	"github.com/rocjay1/cashier-analyzer/internal/render"
)

var summaryHeader = []string{
	"currency", "from", "to",
	"deposits", "withdrawals", "net_cashflow",
	"buyins", "payouts", "game_result",
	"rakeback", "bonus", "fee",
	"total_profit", "effective",
}

var monthlyHeader = []string{
	"currency", "year", "month",
	"net_cashflow", "game_result", "total_profit", "effective",
}

// Write exports one report to path. When the report carries monthly rows the
// monthly layout is written, otherwise the single-row summary layout.
func Write(path string, report models.CurrencyReport) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if report.Monthly != nil {
		err = writeMonthly(w, report)
	} else {
		err = writeSummary(w, report)
	}
	if err != nil {
		return err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing export file %q: %w", path, err)
	}
	slog.Info("exported report", "path", path, "currency", report.Currency)
	return nil
}

// SuffixPath inserts _<currency> before the file extension, defaulting the
// extension to .csv. Used when one run exports several currencies.
func SuffixPath(path, currency string) string {
	ext := filepath.Ext(path)
	root := strings.TrimSuffix(path, ext)
	if ext == "" {
		ext = ".csv"
	}
	return fmt.Sprintf("%s_%s%s", root, currency, ext)
}

func writeSummary(w *csv.Writer, report models.CurrencyReport) error {
	if err := w.Write(summaryHeader); err != nil {
		return err
	}
	s := report.Summary
	return w.Write([]string{
		report.Currency,
		formatDate(report, true),
		formatDate(report, false),
		render.Money(s.Deposits),
		render.Money(s.Withdrawals),
		render.Money(s.NetCashflow),
		render.Money(s.Buyins),
		render.Money(s.Payouts),
		render.Money(s.GameResult),
		render.Money(s.Rakeback),
		render.Money(s.Bonus),
		render.Money(s.Fee),
		render.Money(s.TotalProfit),
		render.Money(s.Effective),
	})
}

func writeMonthly(w *csv.Writer, report models.CurrencyReport) error {
	if err := w.Write(monthlyHeader); err != nil {
		return err
	}
	for _, row := range report.Monthly {
		record := []string{
			report.Currency,
			strconv.Itoa(row.Year),
			fmt.Sprintf("%02d", row.Month),
			render.Money(row.NetCashflow),
			render.Money(row.GameResult),
			render.Money(row.TotalProfit),
			render.Money(row.Effective),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func formatDate(report models.CurrencyReport, from bool) string {
	t := report.To
	if from {
		t = report.From
	}
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
