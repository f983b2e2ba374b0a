package till

import (
	"iter"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a committed sale. It is never modified once in the ledger.
//
// Lines are snapshots: deleting or renaming a product does not change them.
type Sale struct {
	Ticket        uuid.UUID       `json:"ticket"`
	Timestamp     Timestamp       `json:"timestamp"`
	Lines         []CartLine      `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	CustomerName  string          `json:"customerName,omitempty"`
	NextVisitDate string          `json:"nextVisitDate,omitempty"`
}

// LinesTotal sums the subtotals of the lines in order.
func (s Sale) LinesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Lines {
		total = total.Add(l.Subtotal)
	}
	return total
}

// Ledger is the append-only history of sales, in the order they were committed.
type Ledger struct {
	sales []Sale
	repo  Repository[[]Sale]
}

// NewLedger loads the ledger from repo.
func NewLedger(repo Repository[[]Sale]) *Ledger {
	return &Ledger{sales: load("ledger", repo), repo: repo}
}

// Append adds a sale at the end of the ledger and saves it.
func (l *Ledger) Append(s Sale) error {
	s.Lines = slices.Clone(s.Lines)
	l.sales = append(l.sales, s)
	return save("ledger", l.repo, l.sales)
}

// Sales returns an iterator over the sales accepted by any of the filters,
// in ledger order. With no filter, it yields nothing.
func (l *Ledger) Sales(filters ...func(Sale) bool) iter.Seq2[int, Sale] {
	return func(yield func(int, Sale) bool) {
		for i, s := range l.sales {
			accept := false
			for _, filter := range filters {
				if filter(s) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, s) {
				return
			}
		}
	}
}

// Snapshot returns a copy of all the sales.
func (l *Ledger) Snapshot() []Sale { return slices.Clone(l.sales) }

// Len returns the number of sales.
func (l *Ledger) Len() int { return len(l.sales) }
