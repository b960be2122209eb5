// Package pipeline wires the analysis stages together: ingest the export,
// verify the schema, normalize, filter, and compose per-currency reports.
// Each run is self-contained; nothing is shared or persisted between calls.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/rocjay1/cashier-analyzer/internal/analyze"
	"github.com/rocjay1/cashier-analyzer/internal/classify"
	"github.com/rocjay1/cashier-analyzer/internal/csvparse"
	"github.com/rocjay1/cashier-analyzer/internal/mapping"
	"github.com/rocjay1/cashier-analyzer/internal/models"
	"github.com/rocjay1/cashier-analyzer/internal/normalize"
)

// ErrNoTransactions means no row of the export survived normalization. This
// usually points at a wrong file format or a wrong column mapping.
var ErrNoTransactions = errors.New("no rows could be normalized; check the file format and column mapping")

// ErrNoMatch means normalization succeeded but the date/currency filter left
// nothing. It is a soft stop: callers report "no data" and exit cleanly.
var ErrNoMatch = errors.New("no transactions match the date/currency filter")

// Ingestor produces the export header and raw records from some source.
type Ingestor interface {
	Read(ctx context.Context) (header []string, records []models.RawRecord, err error)
}

// FileIngestor reads the export from the local filesystem.
type FileIngestor struct {
	Path string
}

func (f *FileIngestor) Read(ctx context.Context) ([]string, []models.RawRecord, error) {
	return csvparse.ReadFile(f.Path)
}

// BlobClient is the subset of the blob service the pipeline needs.
type BlobClient interface {
	DownloadText(ctx context.Context, containerName, blobName string) (string, error)
}

// BlobIngestor reads the export from blob storage.
type BlobIngestor struct {
	Blob      BlobClient
	Container string
	BlobName  string
}

func (b *BlobIngestor) Read(ctx context.Context) ([]string, []models.RawRecord, error) {
	content, err := b.Blob.DownloadText(ctx, b.Container, b.BlobName)
	if err != nil {
		return nil, nil, err
	}
	return csvparse.Parse(content)
}

// Options configures one analysis run.
type Options struct {
	Mapping    mapping.FieldMapping
	Classifier *classify.Classifier

	From     *time.Time
	To       *time.Time
	Currency string

	Monthly bool
	ByType  bool
}

// Result is the outcome of a successful run.
type Result struct {
	Reports []models.CurrencyReport
	Skipped int
}

// Run executes the full pipeline over one export.
func Run(ctx context.Context, ing Ingestor, opts Options) (*Result, error) {
	if opts.Mapping == nil {
		opts.Mapping = mapping.Default()
	}
	if opts.Classifier == nil {
		opts.Classifier = classify.New(classify.DefaultRules())
	}

	header, records, err := ing.Read(ctx)
	if err != nil {
		return nil, err
	}

	// The schema check must run before any row is normalized so a wrong
	// mapping fails with every missing column listed, not with mass skips.
	if err := mapping.CheckHeader(header, opts.Mapping); err != nil {
		return nil, err
	}

	txs, skipped := normalize.Rows(records, opts.Mapping, opts.Classifier)
	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}
	slog.Info("normalized export", "transactions", len(txs), "skipped", skipped)

	filtered := analyze.Filter(txs, opts.From, opts.To, opts.Currency)
	if len(filtered) == 0 {
		return nil, ErrNoMatch
	}

	reports := analyze.Compose(filtered, analyze.ComposeOptions{
		Monthly: opts.Monthly,
		ByType:  opts.ByType,
		From:    opts.From,
		To:      opts.To,
	})

	if len(reports) > 1 && opts.Currency == "" {
		currencies := make([]string, len(reports))
		for i, r := range reports {
			currencies[i] = r.Currency
		}
		slog.Warn("multiple currencies found, reporting each separately", "currencies", strings.Join(currencies, ", "))
	}

	return &Result{Reports: reports, Skipped: skipped}, nil
}
