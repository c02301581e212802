// SPDX-License-Identifier: Apache-2.0

package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

// WriteCSV writes the record set as one CSV table: header row with the
// sorted field-name union, one row per record in record-set order. Nothing
// is written for an empty record set.
func (s *Service) WriteCSV(w io.Writer, records []intake.Record) error {
	if len(records) == 0 {
		return nil
	}

	fields := FieldNames(records)
	cw := csv.NewWriter(w)
	if err := cw.Write(fields); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(fields))
	for _, rec := range records {
		for i, name := range fields {
			row[i] = cell(rec[name])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	s.logger.Info("export.csv.ok", "rows", len(records), "columns", len(fields))
	return nil
}
