package till

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/till/date"
	"github.com/shopspring/decimal"
)

// TotalRevenue is the sum of the totals of all sales.
func (l *Ledger) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, s := range l.sales {
		total = total.Add(s.Total)
	}
	return total
}

// Between returns a filter accepting the sales made during r.
func Between(r date.Range) func(Sale) bool {
	return func(s Sale) bool { return r.Contains(s.Timestamp.Day()) }
}

// ByDateRange returns the sales made from start to end, both included.
func (l *Ledger) ByDateRange(start, end date.Date) ([]Sale, error) {
	r := date.NewRange(start, end)
	if !r.Valid() {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrValidation, start, end)
	}
	var sales []Sale
	for _, s := range l.Sales(Between(r)) {
		sales = append(sales, s)
	}
	return sales, nil
}

// ByPeriod returns the sales of the day, week or month containing day, and
// the range of that period.
func (l *Ledger) ByPeriod(day date.Date, p date.Period) (date.Range, []Sale) {
	r := date.PeriodRange(day, p)
	var sales []Sale
	for _, s := range l.Sales(Between(r)) {
		sales = append(sales, s)
	}
	return r, sales
}

// Dates returns the distinct days with sales, sorted.
func (l *Ledger) Dates() []date.Date {
	var days []date.Date
	for _, s := range l.sales {
		d := s.Timestamp.Day()
		if !slices.Contains(days, d) {
			days = append(days, d)
		}
	}
	slices.SortFunc(days, func(a, b date.Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		}
		return 0
	})
	return days
}

// HistoryEntry is one sale line of a product.
type HistoryEntry struct {
	Timestamp Timestamp
	Quantity  int
	Subtotal  decimal.Decimal
}

// ProductHistory aggregates the sale lines of one product name.
type ProductHistory struct {
	Name     string
	Quantity int
	Revenue  decimal.Decimal
	Entries  []HistoryEntry
}

// ProductHistory collects every line whose name matches name, ignoring case.
func (l *Ledger) ProductHistory(name string) ProductHistory {
	name = strings.TrimSpace(name)
	h := ProductHistory{Name: name, Revenue: decimal.Zero}
	for _, s := range l.sales {
		for _, line := range s.Lines {
			if !strings.EqualFold(line.Name, name) {
				continue
			}
			h.Quantity += line.Quantity
			h.Revenue = h.Revenue.Add(line.Subtotal)
			h.Entries = append(h.Entries, HistoryEntry{Timestamp: s.Timestamp, Quantity: line.Quantity, Subtotal: line.Subtotal})
		}
	}
	return h
}

// SoldQuantity is the total quantity sold under one product name.
type SoldQuantity struct {
	Name     string
	Quantity int
}

// soldQuantities sums quantities by line name, in order of first appearance.
func (l *Ledger) soldQuantities() []SoldQuantity {
	var sold []SoldQuantity
	index := make(map[string]int)
	for _, s := range l.sales {
		for _, line := range s.Lines {
			i, ok := index[line.Name]
			if !ok {
				i = len(sold)
				index[line.Name] = i
				sold = append(sold, SoldQuantity{Name: line.Name})
			}
			sold[i].Quantity += line.Quantity
		}
	}
	return sold
}

// MostSoldProduct returns the name sold in the largest quantity. Ties go to
// the name that appeared first in the ledger. ok is false without sales.
func (l *Ledger) MostSoldProduct() (best SoldQuantity, ok bool) {
	for _, sq := range l.soldQuantities() {
		if !ok || sq.Quantity > best.Quantity {
			best, ok = sq, true
		}
	}
	return best, ok
}

// NeverSold returns the names of the catalog products that appear in no sale
// line, in catalog order. Lines are matched by exact name.
func (l *Ledger) NeverSold(c *Catalog) []string {
	sold := make(map[string]struct{})
	for _, s := range l.sales {
		for _, line := range s.Lines {
			sold[line.Name] = struct{}{}
		}
	}
	var names []string
	for _, p := range c.products {
		if _, ok := sold[p.Name]; !ok {
			names = append(names, p.Name)
		}
	}
	return names
}

// Bucket is the revenue of one period.
type Bucket struct {
	Key   string
	Total decimal.Decimal
}

// BucketedTotals sums sale totals by period, sorted by key.
func (l *Ledger) BucketedTotals(p date.Period) []Bucket {
	totals := make(map[string]decimal.Decimal)
	for _, s := range l.sales {
		k := p.Key(s.Timestamp.Day())
		totals[k] = totals[k].Add(s.Total)
	}
	buckets := make([]Bucket, 0, len(totals))
	for k, v := range totals {
		buckets = append(buckets, Bucket{Key: k, Total: v})
	}
	slices.SortFunc(buckets, func(a, b Bucket) int { return strings.Compare(a.Key, b.Key) })
	return buckets
}
