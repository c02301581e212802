// SPDX-License-Identifier: Apache-2.0

package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

// BuildXLSX returns an XLSX workbook (as bytes) with one row per record and
// the sorted field-name union as the header row.
func (s *Service) BuildXLSX(records []intake.Record) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Extraction"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	fields := FieldNames(records)
	for i, name := range fields {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cellName, name)
	}

	for r, rec := range records {
		for c, name := range fields {
			cellName, _ := excelize.CoordinatesToCellName(c+1, r+2)
			switch value := rec[name].(type) {
			case nil:
				// leave the cell empty
			case bool:
				_ = f.SetCellValue(sheet, cellName, value)
			default:
				_ = f.SetCellValue(sheet, cellName, cell(value))
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(records),
		"columns", len(fields),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
