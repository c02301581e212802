// SPDX-License-Identifier: Apache-2.0

// Package export serializes aggregated intake records to the flat-file
// formats the surveillance dashboard and spreadsheet workflows consume.
// The field-name set of an export is the sorted union across all records;
// absent values render as empty cells in tabular formats and null in JSON.
package export

import (
	"log/slog"
	"sort"
	"strconv"

	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

// Service writes record sets as CSV, JSON and XLSX.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// FieldNames returns the sorted union of field names across all records.
func FieldNames(records []intake.Record) []string {
	seen := map[string]struct{}{}
	for _, rec := range records {
		for name := range rec {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// cell renders one extracted value for a tabular format.
func cell(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(value)
	case string:
		return value
	default:
		// Extractors only produce bool, string or nil; anything else is a
		// programming defect surfaced by the record contract validator.
		return ""
	}
}
