package till

import (
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	sales := []Sale{
		sale("2024-01-01 09:00:00", line("Soap", 3, "2.50"), line("Towel, large", 1, "8")),
		sale("2024-01-03 18:30:00", line("Brush", 2, "1.255")),
	}
	var b strings.Builder
	if err := ExportCSV(&b, sales); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	want := "Fecha,Producto,Cantidad,Subtotal\n" +
		"2024-01-01 09:00:00,Soap,3,7.50\n" +
		"2024-01-01 09:00:00,\"Towel, large\",1,8.00\n" +
		"2024-01-03 18:30:00,Brush,2,2.51\n"
	if got := b.String(); got != want {
		t.Errorf("ExportCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestExportCSV_Empty(t *testing.T) {
	var b strings.Builder
	if err := ExportCSV(&b, nil); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	if got := b.String(); got != "Fecha,Producto,Cantidad,Subtotal\n" {
		t.Errorf("ExportCSV(nil) = %q, want the header only", got)
	}
}
