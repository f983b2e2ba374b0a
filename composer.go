package till

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is a line of a sale: a snapshot of the product when it was added.
type CartLine struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Customer identifies who a sale is for. Both fields are free text.
type Customer struct {
	Name          string `json:"name"`
	NextVisitDate string `json:"nextVisitDate,omitempty"`
}

// SaleState is the state of a Composer.
type SaleState int

const (
	Accumulating SaleState = iota
	Committed
	Abandoned
)

func (s SaleState) String() string {
	switch s {
	case Accumulating:
		return "accumulating"
	case Committed:
		return "committed"
	case Abandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// AbandonPolicy decides what happens to the stock taken by the lines of an
// abandoned sale.
type AbandonPolicy int

const (
	// KeepDecrements leaves the stock as it is: quantities added to a sale
	// that is walked away from are lost.
	KeepDecrements AbandonPolicy = iota
	// RestoreStock puts the quantities of every line back in the catalog.
	RestoreStock
)

// AddResult describes a line successfully added to a sale.
type AddResult struct {
	Line CartLine
	// Stock is what remains of the product after the line.
	Stock int
	// LowStock is an advisory, set when Stock < LowStockLevel.
	LowStock bool
}

// Composer builds one sale. It is single-use: once committed or abandoned
// every call fails with ErrSaleClosed.
//
// Stock is taken from the catalog as each line is added, not on commit.
type Composer struct {
	catalog  *Catalog
	ledger   *Ledger
	audit    Auditor
	policy   AbandonPolicy
	customer Customer
	lines    []CartLine
	total    decimal.Decimal
	state    SaleState
}

// OpenSale starts a sale for customer, which may be zero.
func OpenSale(catalog *Catalog, ledger *Ledger, customer Customer, policy AbandonPolicy, audit Auditor) *Composer {
	return &Composer{
		catalog:  catalog,
		ledger:   ledger,
		audit:    orDiscard(audit),
		policy:   policy,
		customer: customer,
		total:    decimal.Zero,
		state:    Accumulating,
	}
}

func (c *Composer) open() error {
	if c.state != Accumulating {
		return fmt.Errorf("%w: sale is %s", ErrSaleClosed, c.state)
	}
	return nil
}

// AddLine adds quantity units of a product to the sale.
//
// A quantity above the current stock fails with ErrInsufficientStock and
// leaves both the stock and the sale untouched; the sale stays open.
func (c *Composer) AddLine(productID int, quantity int) (AddResult, error) {
	if err := c.open(); err != nil {
		return AddResult{}, err
	}
	if quantity <= 0 {
		return AddResult{}, fmt.Errorf("%w: quantity %d must be positive", ErrValidation, quantity)
	}
	i, err := c.catalog.index(productID)
	if err != nil {
		return AddResult{}, err
	}
	p := c.catalog.products[i]
	if quantity > p.Stock {
		return AddResult{}, fmt.Errorf("%w: %d %s requested, %d in stock", ErrInsufficientStock, quantity, p.Name, p.Stock)
	}
	p = c.catalog.take(i, quantity)
	line := CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  quantity,
		Subtotal:  p.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
	c.lines = append(c.lines, line)
	c.total = c.total.Add(line.Subtotal)
	res := AddResult{Line: line, Stock: p.Stock, LowStock: p.Stock < LowStockLevel}
	// the decrement is durable before the next prompt.
	return res, c.catalog.Save()
}

// Abandon closes the sale without recording it.
func (c *Composer) Abandon() error {
	if err := c.open(); err != nil {
		return err
	}
	c.state = Abandoned
	return c.releaseStock()
}

// releaseStock applies the abandon policy to the quantities already taken.
func (c *Composer) releaseStock() error {
	if c.policy != RestoreStock || len(c.lines) == 0 {
		return nil
	}
	for _, l := range c.lines {
		c.catalog.give(l.ProductID, l.Quantity)
	}
	return c.catalog.Save()
}

// Commit records the sale in the ledger and returns it.
func (c *Composer) Commit() (Sale, error) {
	if err := c.open(); err != nil {
		return Sale{}, err
	}
	if len(c.lines) == 0 {
		return Sale{}, ErrEmptySale
	}
	sale := Sale{
		Ticket:        uuid.New(),
		Timestamp:     Now(),
		Lines:         slices.Clone(c.lines),
		Total:         c.total,
		CustomerName:  c.customer.Name,
		NextVisitDate: c.customer.NextVisitDate,
	}
	c.state = Committed

	details := make([]string, 0, len(sale.Lines)+1)
	for _, l := range sale.Lines {
		details = append(details, fmt.Sprintf("%d x %s (%s)", l.Quantity, l.Name, l.Subtotal.StringFixed(2)))
	}
	details = append(details, "Total: "+sale.Total.StringFixed(2))
	c.audit.Record("sale", strings.Join(details, " | "))

	// the sale is in the ledger even when a store cannot be saved.
	catalogErr := c.catalog.Save()
	ledgerErr := c.ledger.Append(sale)
	return sale, errors.Join(catalogErr, ledgerErr)
}

// Lines returns the lines added so far.
func (c *Composer) Lines() []CartLine { return slices.Clone(c.lines) }

// Total returns the running total of the sale.
func (c *Composer) Total() decimal.Decimal { return c.total }

// State returns the state of the sale.
func (c *Composer) State() SaleState { return c.state }

// Customer returns who the sale is for.
func (c *Composer) Customer() Customer { return c.customer }
