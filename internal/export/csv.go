// Package export serializes price tables for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"roomprice/internal/pricing"
)

const (
	CSVFilename    = "ceny_pokoi.csv"
	CSVContentType = "text/csv; charset=utf-8"
)

// Header is the first row of every export.
var Header = []string{"Typ pokoju", "Cena bezzwrotna", "Cena zwrotna"}

// WriteCSV writes the header and one row per room in tariff order.
func WriteCSV(w io.Writer, table pricing.PriceTable) error {
	const operation = "export.WriteCSV"

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("%s: write header: %w", operation, err)
	}

	for _, room := range table.Rooms {
		record := []string{
			room.Name,
			strconv.FormatInt(room.NonRefundable, 10),
			strconv.FormatInt(room.Refundable, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%s: write %q: %w", operation, room.Name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: flush: %w", operation, err)
	}
	return nil
}
