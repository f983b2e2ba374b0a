package till

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVHeader is the header row of the sales export.
var CSVHeader = []string{"Fecha", "Producto", "Cantidad", "Subtotal"}

// ExportCSV writes one row per sale line: timestamp, product name, quantity
// and subtotal with two decimals.
func ExportCSV(w io.Writer, sales []Sale) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for _, s := range sales {
		for _, l := range s.Lines {
			row := []string{s.Timestamp.String(), l.Name, strconv.Itoa(l.Quantity), l.Subtotal.StringFixed(2)}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("cannot write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
