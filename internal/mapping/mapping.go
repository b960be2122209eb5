// Package mapping resolves the logical cashier fields (date, type, amount,
// currency, description) to the column names actually present in an export.
package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Logical field names.
const (
	FieldDate        = "date"
	FieldType        = "type"
	FieldAmount      = "amount"
	FieldCurrency    = "currency"
	FieldDescription = "description"
)

// required lists the logical fields that must resolve to a real column.
// Description is optional and tolerated as absent.
var required = []string{FieldDate, FieldType, FieldAmount, FieldCurrency}

// FieldMapping maps a logical field name to the column name in the export.
// Built once at startup and treated as immutable afterwards.
type FieldMapping map[string]string

// Default returns the identity mapping: the export is expected to name its
// columns after the logical fields.
func Default() FieldMapping {
	return FieldMapping{
		FieldDate:        "date",
		FieldType:        "type",
		FieldAmount:      "amount",
		FieldCurrency:    "currency",
		FieldDescription: "description",
	}
}

// ConfigError reports an unreadable or malformed mapping file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mapping config %q: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Load reads a JSON object of logical-field → column-name overrides and
// merges it over the default mapping. Only the supplied keys are replaced.
func Load(path string) (FieldMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var overrides map[string]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	m := Default()
	for k, v := range overrides {
		m[k] = v
	}
	return m, nil
}

// SchemaError reports required logical fields whose mapped columns are
// missing from the export header. Every missing field is listed, not just the
// first one found.
type SchemaError struct {
	// Missing pairs each absent logical field with the column name that was
	// expected to carry it, formatted "field -> 'column'".
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("export is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// CheckHeader verifies that every required logical field resolves to a column
// present in the header. It must run before normalization.
func CheckHeader(header []string, m FieldMapping) error {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	var missing []string
	for _, field := range required {
		if col := m[field]; !present[col] {
			missing = append(missing, fmt.Sprintf("%s -> %q", field, col))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &SchemaError{Missing: missing}
	}
	return nil
}
