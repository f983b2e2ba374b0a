package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/till"
	"github.com/etnz/till/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ts(s string) till.Timestamp {
	v, err := till.ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return v
}

// contains checks that every want fragment appears in got.
func contains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("missing %q in:\n%s", w, got)
		}
	}
}

func TestCatalogMarkdown(t *testing.T) {
	products := []till.Product{
		{ID: 1, Name: "Soap", UnitPrice: D("2.5"), Stock: 7},
		{ID: 12, Name: "Towel", UnitPrice: D("1234.5"), Stock: 0},
	}
	got := CatalogMarkdown(products, "USD")
	contains(t, got, "# Catalog", "ID", "Name", "Price", "Stock", "Soap", "$2.50", "Towel", "$1,234.50", "12")

	contains(t, CatalogMarkdown(nil, "USD"), "The catalog is empty.")
}

func TestLowStockMarkdown(t *testing.T) {
	got := LowStockMarkdown([]till.Product{{Name: "Soap", Stock: 2}}, 5)
	contains(t, got, "# Stock under 5", "Soap (stock: 2)")
	contains(t, LowStockMarkdown(nil, 5), "Every product is well stocked.")
}

func TestNeverSoldMarkdown(t *testing.T) {
	contains(t, NeverSoldMarkdown([]string{"Comb", "Mirror"}), "Comb", "Mirror")
	contains(t, NeverSoldMarkdown(nil), "Every product has been sold")
}

func TestTicketMarkdown(t *testing.T) {
	s := till.Sale{
		Ticket:    uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Timestamp: ts("2024-01-01 10:00:00"),
		Lines: []till.CartLine{
			{ProductID: 1, Name: "Soap", Quantity: 3, Subtotal: D("7.5")},
			{ProductID: 2, Name: "Towel", Quantity: 1, Subtotal: D("8")},
		},
		Total: D("15.5"),
	}
	got := TicketMarkdown(s, "USD")
	contains(t, got, "# Sale ticket", "2024-01-01 10:00:00", "00000000-0000-0000-0000-000000000001", "Soap", "$7.50", "$8.00", "**$15.50**")
	if strings.Contains(got, "Customer") {
		t.Errorf("ticket without customer shows one:\n%s", got)
	}

	s.CustomerName, s.NextVisitDate = "Ana", "2024-02-01"
	contains(t, TicketMarkdown(s, "USD"), "Customer: Ana (next visit: 2024-02-01)")
}

func TestCartMarkdown(t *testing.T) {
	lines := []till.CartLine{{Name: "Soap", Quantity: 2, Subtotal: D("5")}, {Name: "Comb", Quantity: 1, Subtotal: D("1.25")}}
	contains(t, CartMarkdown(lines, "USD"), "## Cart", "$5.00", "$1.25", "**$6.25**")
	contains(t, CartMarkdown(nil, "USD"), "The cart is empty.")
}

func TestSummaryMarkdown(t *testing.T) {
	s := till.Summary{
		Day:            date.New(2024, 1, 1),
		OpeningBalance: D("100"),
		Opened:         true,
		Revenue:        D("7.5"),
		Sales:          1,
		MostSold:       till.SoldQuantity{Name: "Soap", Quantity: 3},
		HasMostSold:    true,
	}
	got := SummaryMarkdown(s, "USD")
	contains(t, got, "# Sales summary on 2024-01-01", "$100.00", "$7.50", "**$107.50**", "Soap (3 units)")
	if strings.Contains(got, "No opening balance") {
		t.Errorf("summary of an opened day warns:\n%s", got)
	}

	contains(t, SummaryMarkdown(till.Summary{Day: date.New(2024, 1, 1)}, "USD"), "none", "No opening balance was declared")
}

func TestRangeMarkdown(t *testing.T) {
	sales := []till.Sale{
		{Timestamp: ts("2024-01-01 10:00:00"), Total: D("7.5"), CustomerName: "Ana"},
		{Timestamp: ts("2024-01-02 11:00:00"), Total: D("2.5")},
	}
	got := RangeMarkdown(date.New(2024, 1, 1), date.New(2024, 1, 2), sales, "USD")
	contains(t, got, "# Sales from 2024-01-01 to 2024-01-02", "Ana", "$7.50", "$2.50", "**$10.00**")
	contains(t, RangeMarkdown(date.New(2024, 1, 1), date.New(2024, 1, 2), nil, "USD"), "No sales in this range.")
}

func TestDatesMarkdown(t *testing.T) {
	contains(t, DatesMarkdown([]date.Date{date.New(2024, 1, 1), date.New(2024, 1, 3)}), "2024-01-01", "2024-01-03")
	contains(t, DatesMarkdown(nil), "No sales recorded.")
}

func TestProductHistoryMarkdown(t *testing.T) {
	h := till.ProductHistory{
		Name:     "Soap",
		Quantity: 5,
		Revenue:  D("12.5"),
		Entries: []till.HistoryEntry{
			{Timestamp: ts("2024-01-01 10:00:00"), Quantity: 3, Subtotal: D("7.5")},
			{Timestamp: ts("2024-01-03 18:30:00"), Quantity: 2, Subtotal: D("5")},
		},
	}
	contains(t, ProductHistoryMarkdown(h, "USD"), "# History for Soap", "2024-01-03 18:30:00", "**5**", "**$12.50**")
	contains(t, ProductHistoryMarkdown(till.ProductHistory{Name: "Comb"}, "USD"), "never sold")
}

func TestBucketsMarkdown(t *testing.T) {
	buckets := []till.Bucket{{Key: "2024-W01", Total: D("20.5")}, {Key: "2024-W02", Total: D("32")}}
	contains(t, BucketsMarkdown(date.Weekly, buckets, "EUR"), "# Revenue by week", "2024-W01", "2024-W02", "32.00")
}

func TestCashMarkdown(t *testing.T) {
	s := till.Summary{Day: date.New(2024, 1, 1), OpeningBalance: D("100"), Opened: true, Revenue: D("13")}
	contains(t, CashMarkdown(s, s.ClosingBalance(), "USD"), "# Cash drawer on 2024-01-01", "$100.00", "$13.00", "**$113.00**")
	contains(t, CashMarkdown(s, D("120"), "USD"), "**$120.00**")
}

func TestCustomersMarkdown(t *testing.T) {
	got := CustomersMarkdown([]till.Customer{{Name: "Ana", NextVisitDate: "2024-02-01"}, {Name: "Luis"}})
	contains(t, got, "Ana", "2024-02-01", "Luis")
	contains(t, CustomersMarkdown(nil), "No customer registered.")
}

func TestVisitsMarkdown(t *testing.T) {
	contains(t, VisitsMarkdown([]till.Customer{{Name: "Ana", NextVisitDate: "2024-02-01"}}), "Ana will come back on 2024-02-01")
	contains(t, VisitsMarkdown(nil), "No visit planned.")
}
