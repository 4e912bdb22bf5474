package render

import (
	"fmt"
	"io"

	"gdpchart/internal/core/chart"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook
const (
	SheetObservations = "Observations"
	SheetBars         = "Bars"
	SheetDataset      = "Dataset"
)

// Workbook writes the observations, their bars and the dataset captions as an XLSX document
func Workbook(w io.Writer, c *chart.Chart, m Meta) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetObservations); err != nil {
		return fmt.Errorf("render: rename sheet: %w", err)
	}
	for _, name := range []string{SheetBars, SheetDataset} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("render: new sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("render: header style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("render: money style: %w", err)
	}

	obs := [][]any{{"Date", "Year", "Quarter", "Value (Billions USD)", "Tooltip"}}
	for i, o := range c.Observations {
		obs = append(obs, []any{o.Date, o.Year, o.Quarter, o.Value, c.Bars[i].Tooltip})
	}
	bars := [][]any{{"Index", "X", "Y", "Width", "Height"}}
	for i, b := range c.Bars {
		bars = append(bars, []any{i, b.X, b.Y, b.Width, b.Height})
	}
	ds := [][]any{
		{"Field", "Value"},
		{"Title", m.title()},
		{"Description", m.Description},
		{"Source", m.Source},
		{"From", m.FromDate},
		{"To", m.ToDate},
		{"Layout", c.Layout.String()},
		{"Canvas", fmt.Sprintf("%gx%g padding %g", c.Canvas.Width, c.Canvas.Height, c.Canvas.Padding)},
	}

	for _, s := range []struct {
		name string
		rows [][]any
		cols int
	}{
		{SheetObservations, obs, 5},
		{SheetBars, bars, 5},
		{SheetDataset, ds, 2},
	} {
		if err := writeRows(f, s.name, s.rows); err != nil {
			return err
		}
		last, _ := excelize.ColumnNumberToName(s.cols)
		if err := f.SetCellStyle(s.name, "A1", last+"1", header); err != nil {
			return fmt.Errorf("render: style %s header: %w", s.name, err)
		}
		if err := f.SetColWidth(s.name, "A", last, 16); err != nil {
			return fmt.Errorf("render: width %s: %w", s.name, err)
		}
	}
	if len(c.Observations) > 0 {
		end := fmt.Sprintf("D%d", len(c.Observations)+1)
		if err := f.SetCellStyle(SheetObservations, "D2", end, money); err != nil {
			return fmt.Errorf("render: money column: %w", err)
		}
	}
	if err := f.SetColWidth(SheetObservations, "E", "E", 28); err != nil {
		return fmt.Errorf("render: tooltip width: %w", err)
	}
	if err := f.SetPanes(SheetObservations, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("render: freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("render: encode xlsx: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("render: %s row %d: %w", sheet, i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("render: %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
