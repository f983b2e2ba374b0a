package till

import (
	"github.com/etnz/till/date"
	"github.com/shopspring/decimal"
)

// Stores gathers the repositories of every store of a Shop.
type Stores struct {
	Catalog   Repository[CatalogData]
	Ledger    Repository[[]Sale]
	Cash      Repository[*CashRecord]
	Customers Repository[[]Customer]
	Users     Repository[[]User]
}

// Shop is the state of the application: every store, loaded once at startup
// and shared by the commands of a session.
type Shop struct {
	Catalog   *Catalog
	Ledger    *Ledger
	Cash      *CashSession
	Customers *Customers
	Users     *Users

	// Currency formats amounts for display.
	Currency string
	// Abandon applies to the sales opened by OpenSale.
	Abandon AbandonPolicy

	audit Auditor
}

// Open loads every store. audit may be nil.
func Open(s Stores, audit Auditor) (*Shop, error) {
	audit = orDiscard(audit)
	ledger := NewLedger(s.Ledger)
	users, err := NewUsers(s.Users, audit)
	if err != nil {
		return nil, err
	}
	return &Shop{
		Catalog:   NewCatalog(s.Catalog, audit),
		Ledger:    ledger,
		Cash:      NewCashSession(s.Cash, ledger, audit),
		Customers: NewCustomers(s.Customers),
		Users:     users,
		Currency:  DefaultCurrency,
		audit:     audit,
	}, nil
}

// OpenSale starts a sale against the catalog of the shop.
func (s *Shop) OpenSale(customer Customer) *Composer {
	return OpenSale(s.Catalog, s.Ledger, customer, s.Abandon, s.audit)
}

// M formats an amount in the shop currency.
func (s *Shop) M(v decimal.Decimal) Money { return M(v, s.Currency) }

// Summary is the general sales report.
type Summary struct {
	Day            date.Date
	OpeningBalance decimal.Decimal
	Opened         bool // false when no balance was declared for Day
	Revenue        decimal.Decimal
	Sales          int
	MostSold       SoldQuantity
	HasMostSold    bool
}

// Summary computes the general report for a day without prompting: a day
// with no declared balance reports zero.
func (s *Shop) Summary(day date.Date) Summary {
	opening, opened := s.Cash.OpeningBalance(day)
	best, ok := s.Ledger.MostSoldProduct()
	return Summary{
		Day:            day,
		OpeningBalance: opening,
		Opened:         opened,
		Revenue:        s.Ledger.TotalRevenue(),
		Sales:          s.Ledger.Len(),
		MostSold:       best,
		HasMostSold:    ok,
	}
}

// ClosingBalance of the summary: opening balance plus all-time revenue.
func (s Summary) ClosingBalance() decimal.Decimal { return s.OpeningBalance.Add(s.Revenue) }
