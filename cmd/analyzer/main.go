package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rocjay1/cashier-analyzer/internal/classify"
	"github.com/rocjay1/cashier-analyzer/internal/export"
	"github.com/rocjay1/cashier-analyzer/internal/mapping"
	"github.com/rocjay1/cashier-analyzer/internal/parse"
	"github.com/rocjay1/cashier-analyzer/internal/pipeline"
	"github.com/rocjay1/cashier-analyzer/internal/render"
	"github.com/rocjay1/cashier-analyzer/internal/services"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	file := flag.String("file", "", "Path to the cashier export (.csv)")
	blob := flag.String("blob", "", "Read the export from blob storage instead, as container/name (needs BLOB_SERVICE_URL)")
	mapConfig := flag.String("map-config", "", "Path to a JSON file mapping logical fields (date, type, amount, currency, description) to export columns")
	rulesConfig := flag.String("rules", "", "Path to a JSON file overriding the type classification rules")
	currency := flag.String("currency", "", "Only analyze this currency (e.g. USD)")
	fromArg := flag.String("from", "", "Start of the period (YYYY-MM-DD)")
	toArg := flag.String("to", "", "End of the period, inclusive (YYYY-MM-DD)")
	monthly := flag.Bool("monthly", false, "Include monthly stats")
	byType := flag.Bool("by-type", false, "Include the per-type breakdown")
	exportPath := flag.String("export", "", "Export the report to this CSV file")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showUnknown := flag.Bool("show-unknown", false, "Show the total of transactions with an unknown type")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if (*file == "") == (*blob == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -file or -blob is required")
		flag.Usage()
		os.Exit(1)
	}

	opts := pipeline.Options{
		Currency: *currency,
		From:     parseDateArg(*fromArg),
		To:       parseDateArg(*toArg),
		Monthly:  *monthly,
		ByType:   *byType,
	}

	if *mapConfig != "" {
		m, err := mapping.Load(*mapConfig)
		if err != nil {
			fatal(err)
		}
		opts.Mapping = m
	}
	if *rulesConfig != "" {
		clf, err := classify.Load(*rulesConfig)
		if err != nil {
			fatal(err)
		}
		opts.Classifier = clf
	}

	ing, err := buildIngestor(*file, *blob)
	if err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := pipeline.Run(ctx, ing, opts)
	if errors.Is(err, pipeline.ErrNoMatch) {
		fmt.Println("No transactions left after the date/currency filter.")
		return
	}
	if err != nil {
		fatal(err)
	}

	r := render.New(*noColor)
	multiExport := len(result.Reports) > 1 && *exportPath != "" && *currency == ""

	for _, report := range result.Reports {
		fmt.Print(r.Summary(report))
		if *monthly {
			fmt.Print(r.Monthly(report.Monthly))
		}
		if *byType {
			fmt.Print(r.ByType(report.ByType))
		}
		if *showUnknown {
			fmt.Print(r.Unknown(report))
		}

		if *exportPath != "" {
			path := *exportPath
			if multiExport {
				path = export.SuffixPath(path, report.Currency)
			}
			if err := export.Write(path, report); err != nil {
				fatal(err)
			}
			fmt.Printf("Report exported to: %s\n", path)
		}
	}
}

func buildIngestor(file, blob string) (pipeline.Ingestor, error) {
	if file != "" {
		return &pipeline.FileIngestor{Path: file}, nil
	}

	container, name, ok := strings.Cut(blob, "/")
	if !ok || container == "" || name == "" {
		return nil, fmt.Errorf("-blob must be container/name, got %q", blob)
	}
	blobService, err := services.NewBlobService()
	if err != nil {
		return nil, err
	}
	return &pipeline.BlobIngestor{Blob: blobService, Container: container, BlobName: name}, nil
}

func parseDateArg(value string) *time.Time {
	if value == "" {
		return nil
	}
	d, ok := parse.Date(value)
	if !ok {
		fatal(fmt.Errorf("invalid date argument %q (expected YYYY-MM-DD)", value))
	}
	return &d
}

func fatal(err error) {
	slog.Error("analysis failed", "error", err)
	os.Exit(1)
}
