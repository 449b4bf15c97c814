package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"roomprice/internal/pricing"
)

const (
	XLSXFilename    = "ceny_pokoi.xlsx"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetName = "Ceny"
)

// WriteXLSX writes the table as a workbook with a column chart of both tiers.
func WriteXLSX(w io.Writer, table pricing.PriceTable) error {
	const operation = "export.WriteXLSX"

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("%s: rename sheet: %w", operation, err)
	}

	for col, header := range Header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return fmt.Errorf("%s: set header: %w", operation, err)
		}
	}

	for row, room := range table.Rooms {
		data := []interface{}{room.Name, room.NonRefundable, room.Refundable}
		for col, value := range data {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return fmt.Errorf("%s: set %s: %w", operation, cell, err)
			}
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("%s: create style: %w", operation, err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "C1", style); err != nil {
		return fmt.Errorf("%s: apply style: %w", operation, err)
	}
	if err := f.SetColWidth(SheetName, "A", "A", 28); err != nil {
		return fmt.Errorf("%s: set width: %w", operation, err)
	}
	if err := f.SetColWidth(SheetName, "B", "C", 16); err != nil {
		return fmt.Errorf("%s: set width: %w", operation, err)
	}

	if len(table.Rooms) > 0 {
		if err := f.AddChart(SheetName, "E2", priceChart(len(table.Rooms))); err != nil {
			return fmt.Errorf("%s: add chart: %w", operation, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%s: write workbook: %w", operation, err)
	}
	return nil
}

func priceChart(rows int) *excelize.Chart {
	last := rows + 1
	categories := fmt.Sprintf("%s!$A$2:$A$%d", SheetName, last)

	return &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$B$1", SheetName),
				Categories: categories,
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", SheetName, last),
			},
			{
				Name:       fmt.Sprintf("%s!$C$1", SheetName),
				Categories: categories,
				Values:     fmt.Sprintf("%s!$C$2:$C$%d", SheetName, last),
			},
		},
		Title:  []excelize.RichTextRun{{Text: "Ceny pokoi"}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	}
}
