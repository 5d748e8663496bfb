package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the summary table.
const SheetName = "Summary"

var xlsxHeaders = []string{
	"Series", "File", "Rows", "Games (x1000)", "Win rate [%]",
	"N", "Mean", "Min", "Q1", "Median", "Q3", "Max",
	"Whisker low", "Whisker high", "Notch low", "Notch high", "Fliers",
}

// Workbook builds a workbook with one header row and one row per series. Numbers are stored as numeric cells.
func Workbook(rows []Row) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, err
	}
	for i, h := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			f.Close()
			return nil, err
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		f.SetRowStyle(SheetName, 1, 1, headerStyle)
	}

	for i, r := range rows {
		b := r.Box
		values := []interface{}{
			r.Label, r.File, r.Rows, r.FinalGames, r.FinalWinRate,
			b.N, b.Mean, b.Min, b.Q1, b.Median, b.Q3, b.Max,
			b.WhiskerLo, b.WhiskerHi, b.NotchLo, b.NotchHi, len(b.Fliers),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}
	f.SetColWidth(SheetName, "A", "B", 14)
	f.SetColWidth(SheetName, "C", "Q", 12)
	return f, nil
}

// WriteXLSX writes the summary workbook to w.
func WriteXLSX(w io.Writer, rows []Row) error {
	f, err := Workbook(rows)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()
	return f.Write(w)
}

// SaveXLSX writes the summary workbook to path.
func SaveXLSX(path string, rows []Row) error {
	f, err := Workbook(rows)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
