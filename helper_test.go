package till

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/etnz/till/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// memRepo keeps the JSON encoding of the last saved state, so that tests go
// through the same marshalling as the files.
type memRepo[T any] struct {
	data  []byte
	saves int
	fail  error // returned by Save when set
}

func (r *memRepo[T]) Load() (T, error) {
	var v T
	if r.data == nil {
		return v, fs.ErrNotExist
	}
	err := json.Unmarshal(r.data, &v)
	return v, err
}

func (r *memRepo[T]) Save(v T) error {
	if r.fail != nil {
		return r.fail
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.data = data
	r.saves++
	return nil
}

// testStores returns in-memory repositories for every store.
type testStores struct {
	catalog   *memRepo[CatalogData]
	ledger    *memRepo[[]Sale]
	cash      *memRepo[*CashRecord]
	customers *memRepo[[]Customer]
	users     *memRepo[[]User]
}

func newTestStores() *testStores {
	return &testStores{
		catalog:   &memRepo[CatalogData]{},
		ledger:    &memRepo[[]Sale]{},
		cash:      &memRepo[*CashRecord]{},
		customers: &memRepo[[]Customer]{},
		users:     &memRepo[[]User]{},
	}
}

func (s *testStores) Stores() Stores {
	return Stores{Catalog: s.catalog, Ledger: s.ledger, Cash: s.cash, Customers: s.customers, Users: s.users}
}

func openTestShop(t *testing.T, s *testStores) (*Shop, *recorder) {
	t.Helper()
	rec := &recorder{}
	shop, err := Open(s.Stores(), rec)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return shop, rec
}

// recorder is an Auditor keeping events in memory.
type recorder struct{ events []string }

func (r *recorder) Record(event, detail string) {
	r.events = append(r.events, event+" | "+detail)
}

func (r *recorder) has(prefix string) bool {
	for _, e := range r.events {
		if strings.HasPrefix(e, prefix) {
			return true
		}
	}
	return false
}

// script is a Prompter answering from a list, then failing.
type script struct {
	answers []string
	asked   []string
}

var errEndOfScript = errors.New("end of script")

func (s *script) Prompt(label string) (string, error) {
	s.asked = append(s.asked, label)
	if len(s.answers) == 0 {
		return "", errEndOfScript
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

// D is a helper for test to create a decimal from a const.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// at returns a timestamp from a "2006-01-02 15:04:05" const.
func at(s string) Timestamp {
	ts, err := ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// line creates a cart line for a price and a quantity.
func line(name string, quantity int, price string) CartLine {
	return CartLine{Name: name, Quantity: quantity, Subtotal: D(price).Mul(decimal.NewFromInt(int64(quantity)))}
}

// sale creates a sale whose total is the sum of its lines.
func sale(ts string, lines ...CartLine) Sale {
	s := Sale{Timestamp: at(ts), Lines: lines}
	s.Total = s.LinesTotal()
	return s
}

// freeze sets the clock of the test.
func freeze(t *testing.T, ts string) {
	t.Helper()
	t.Setenv(date.EnvTestingNow, ts)
}

var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Timestamp) bool { return a.String() == b.String() }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

func mustCreate(t *testing.T, c *Catalog, name, price string, stock int) Product {
	t.Helper()
	p, err := c.Create(name, D(price), stock)
	if err != nil {
		t.Fatalf("Create(%q) error = %v", name, err)
	}
	return p
}

func names(products []Product) string {
	var s []string
	for _, p := range products {
		s = append(s, fmt.Sprintf("%s:%d", p.Name, p.Stock))
	}
	return strings.Join(s, ",")
}
