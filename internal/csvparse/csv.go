// Package csvparse reads a cashier export file into its header and untyped
// raw records. It makes no parsing decisions beyond column splitting; the
// normalizer owns all value interpretation.
package csvparse

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rocjay1/cashier-analyzer/internal/models"
	"golang.org/x/text/encoding/charmap"
)

// IngestionError reports a missing, unreadable or undecodable export file.
type IngestionError struct {
	Path string
	Err  error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("reading export %q: %v", e.Path, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }

// ReadFile reads a CSV export from disk. Files that are not valid UTF-8 are
// decoded as windows-1251 and then latin-1, in that order; legacy Windows
// export tools are common upstream.
func ReadFile(path string) ([]string, []models.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &IngestionError{Path: path, Err: err}
	}

	content, err := decode(data)
	if err != nil {
		return nil, nil, &IngestionError{Path: path, Err: err}
	}

	header, records, err := Parse(content)
	if err != nil {
		return nil, nil, &IngestionError{Path: path, Err: err}
	}
	slog.Info("read export file", "path", path, "rows", len(records), "columns", len(header))
	return header, records, nil
}

// Parse splits CSV content into the header row and one raw record per data
// row. Cell values are trimmed; rows shorter than the header keep the columns
// they have, the rest resolve to empty strings downstream.
func Parse(content string) ([]string, []models.RawRecord, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("decoding CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	records := make([]models.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(models.RawRecord, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, rec)
	}
	return header, records, nil
}

func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	for _, cm := range []*charmap.Charmap{charmap.Windows1251, charmap.ISO8859_1} {
		if decoded, err := cm.NewDecoder().Bytes(data); err == nil {
			slog.Info("decoded export with legacy encoding", "encoding", cm.String())
			return string(decoded), nil
		}
	}
	return "", fmt.Errorf("could not determine file encoding")
}
