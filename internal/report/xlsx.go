package report

import (
	"encoding/json"
	"fmt"
	"io"

	"wwilson/ops-scripts/internal/fileutils"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the name of the single worksheet.
const DefaultSheet = "ALL"

// WriteXLSX writes rows to a single-sheet workbook at filePath: a bold header row
// in column order, then one row per range. Absent fields leave the cell empty.
func WriteXLSX(filePath, sheet string, rows []Row) error {
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := Headers()
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, bold); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	for r, row := range rows {
		for c, h := range headers {
			v, ok := row[h]
			if !ok || v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(v)); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	return fileutils.WriteFileAtomic(filePath, func(w io.Writer) error {
		if err := f.Write(w); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		return nil
	})
}

// cellValue converts a decoded JSON value into something excelize writes natively.
func cellValue(v interface{}) interface{} {
	switch t := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return t.String()
		}
		if d.IsInteger() && d.Abs().LessThan(decimal.NewFromInt(1<<53)) {
			return d.IntPart()
		}
		f, _ := d.Float64()
		return f
	case string, bool, float64, int, int64:
		return t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
