// Package render turns currency reports into colorized terminal output. All
// render functions are pure string builders; color and tty concerns live only
// in the Renderer configuration.
package render

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rocjay1/cashier-analyzer/internal/models"
	"github.com/shopspring/decimal"
)

const (
	colorGreen = "32"
	colorRed   = "31"
)

// Renderer renders reports with optional ANSI colors.
type Renderer struct {
	useColor bool
}

// New returns a renderer. Color is enabled only when noColor is false and
// stdout is a terminal.
func New(noColor bool) *Renderer {
	return &Renderer{useColor: !noColor && isatty.IsTerminal(os.Stdout.Fd())}
}

// NewPlain returns a renderer that never emits ANSI codes.
func NewPlain() *Renderer {
	return &Renderer{}
}

// Money formats a monetary value with an explicit sign and two decimals.
func Money(v decimal.Decimal) string {
	s := v.StringFixed(2)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}

func (r *Renderer) colorize(text, code string) string {
	if !r.useColor {
		return text
	}
	return fmt.Sprintf("\033[%sm%s\033[0m", code, text)
}

func (r *Renderer) money(v decimal.Decimal) string {
	code := colorGreen
	if v.IsNegative() {
		code = colorRed
	}
	return r.colorize(Money(v), code)
}

// Summary renders the cashier summary block for one currency report.
func (r *Renderer) Summary(report models.CurrencyReport) string {
	var b strings.Builder
	s := report.Summary

	b.WriteString("=== CASHIER SUMMARY ===\n")
	fmt.Fprintf(&b, "Period:   %s\n", formatRange(report))
	fmt.Fprintf(&b, "Currency: %s\n\n", report.Currency)

	line := func(label string, v decimal.Decimal) {
		fmt.Fprintf(&b, "%-15s %s\n", label, r.money(v))
	}

	line("Deposits:", s.Deposits)
	line("Withdrawals:", s.Withdrawals.Neg())
	line("Net cashflow:", s.NetCashflow)
	b.WriteString("\n")
	line("Buy-ins:", s.Buyins.Neg())
	line("Payouts:", s.Payouts)
	line("Game result:", s.GameResult)
	b.WriteString("\n")
	line("Rakeback:", s.Rakeback)
	line("Bonuses:", s.Bonus)
	line("Fees:", s.Fee.Neg())
	b.WriteString(strings.Repeat("-", 28) + "\n")
	line("Total profit:", s.TotalProfit)
	line("Effective:", s.Effective)
	b.WriteString("\n")
	return b.String()
}

// Monthly renders the monthly stats table.
func (r *Renderer) Monthly(rows []models.MonthlyRow) string {
	if len(rows) == 0 {
		return "No data for monthly stats.\n"
	}

	var b strings.Builder
	b.WriteString("=== MONTHLY STATS ===\n")
	header := fmt.Sprintf("%-8s %12s %12s %12s %12s", "Month", "Net", "Game", "Profit", "Effective")
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", len(header)) + "\n")

	for _, row := range rows {
		fmt.Fprintf(&b, "%-8s %12s %12s %12s %12s\n",
			fmt.Sprintf("%d-%02d", row.Year, row.Month),
			Money(row.NetCashflow),
			Money(row.GameResult),
			Money(row.TotalProfit),
			r.money(row.Effective),
		)
	}
	b.WriteString("\n")
	return b.String()
}

// ByType renders the signed per-type table, categories sorted by name.
func (r *Renderer) ByType(breakdown models.TypeBreakdown) string {
	if len(breakdown) == 0 {
		return "No data for type breakdown.\n"
	}

	cats := make([]string, 0, len(breakdown))
	for c := range breakdown {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)

	var b strings.Builder
	b.WriteString("=== BY TYPE ===\n")
	fmt.Fprintf(&b, "%-12s %12s\n", "Type", "Amount")
	b.WriteString(strings.Repeat("-", 25) + "\n")
	for _, c := range cats {
		fmt.Fprintf(&b, "%-12s %12s\n", c, r.money(breakdown[models.Category(c)]))
	}
	b.WriteString("\n")
	return b.String()
}

// Unknown renders the unknown-category total line, or "" when there is none.
func (r *Renderer) Unknown(report models.CurrencyReport) string {
	if !report.Unknown.IsPositive() {
		return ""
	}
	return fmt.Sprintf("UNKNOWN: total of unclassified transactions: %s\n\n", report.Unknown.StringFixed(2))
}

func formatRange(report models.CurrencyReport) string {
	var parts []string
	if report.From != nil {
		parts = append(parts, report.From.Format("2006-01-02"))
	}
	if report.To != nil {
		parts = append(parts, report.To.Format("2006-01-02"))
	}
	if len(parts) == 0 {
		return "all available data"
	}
	return strings.Join(parts, " .. ")
}
