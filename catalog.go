package till

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// LowStockLevel is the stock under which a sale line emits a low-stock advisory.
const LowStockLevel = 5

// Product is a sellable item of the catalog.
type Product struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Stock     int             `json:"stock"`
}

// CatalogData is the persisted state of the catalog.
type CatalogData struct {
	Inventory []Product `json:"inventory"`
	NextID    int       `json:"nextId"`
}

// Catalog owns the products and the id counter.
//
// Ids are issued by a monotonic counter and never reused, even after a
// deletion. Every mutation is saved before returning.
type Catalog struct {
	products []Product
	nextID   int
	repo     Repository[CatalogData]
	audit    Auditor
}

// NewCatalog loads the catalog from repo.
func NewCatalog(repo Repository[CatalogData], audit Auditor) *Catalog {
	data := load("catalog", repo)
	c := &Catalog{
		products: data.Inventory,
		nextID:   data.NextID,
		repo:     repo,
		audit:    orDiscard(audit),
	}
	// the counter must stay ahead of every issued id, even in hand-edited files.
	for _, p := range c.products {
		if p.ID >= c.nextID {
			c.nextID = p.ID + 1
		}
	}
	if c.nextID < 1 {
		c.nextID = 1
	}
	return c
}

// Create adds a new product and returns it.
//
// The id counter is advanced before anything can fail downstream and is
// never rolled back.
func (c *Catalog) Create(name string, unitPrice decimal.Decimal, stock int) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, fmt.Errorf("%w: product name is empty", ErrValidation)
	}
	if unitPrice.IsNegative() {
		return Product{}, fmt.Errorf("%w: price %s is negative", ErrValidation, unitPrice)
	}
	if stock < 0 {
		return Product{}, fmt.Errorf("%w: stock %d is negative", ErrValidation, stock)
	}
	id := c.nextID
	c.nextID++
	p := Product{ID: id, Name: name, UnitPrice: unitPrice, Stock: stock}
	c.products = append(c.products, p)
	c.audit.Record("product created", fmt.Sprintf("%s | Price: %s | Stock: %d", name, unitPrice.StringFixed(2), stock))
	return p, c.Save()
}

// Find returns the product with this id.
func (c *Catalog) Find(id int) (Product, error) {
	i, err := c.index(id)
	if err != nil {
		return Product{}, err
	}
	return c.products[i], nil
}

func (c *Catalog) index(id int) (int, error) {
	i := slices.IndexFunc(c.products, func(p Product) bool { return p.ID == id })
	if i < 0 {
		return -1, fmt.Errorf("%w: product id %d", ErrNotFound, id)
	}
	return i, nil
}

// UpdateStock sets the stock of a product.
func (c *Catalog) UpdateStock(id int, stock int) error {
	if stock < 0 {
		return fmt.Errorf("%w: stock %d is negative", ErrValidation, stock)
	}
	i, err := c.index(id)
	if err != nil {
		return err
	}
	p := &c.products[i]
	c.audit.Record("stock updated", fmt.Sprintf("%s | Before: %d | Now: %d", p.Name, p.Stock, stock))
	p.Stock = stock
	return c.Save()
}

// Rename changes the name of a product. Past sales keep the old name.
func (c *Catalog) Rename(id int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: product name is empty", ErrValidation)
	}
	i, err := c.index(id)
	if err != nil {
		return err
	}
	p := &c.products[i]
	c.audit.Record("product renamed", fmt.Sprintf("%s -> %s", p.Name, name))
	p.Name = name
	return c.Save()
}

// Reprice changes the unit price of a product. Past sales keep their subtotals.
func (c *Catalog) Reprice(id int, price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: price %s is negative", ErrValidation, price)
	}
	i, err := c.index(id)
	if err != nil {
		return err
	}
	p := &c.products[i]
	c.audit.Record("product repriced", fmt.Sprintf("%s | Before: %s | Now: %s", p.Name, p.UnitPrice.StringFixed(2), price.StringFixed(2)))
	p.UnitPrice = price
	return c.Save()
}

// Delete removes a product. It does not touch the ledger.
func (c *Catalog) Delete(id int) error {
	i, err := c.index(id)
	if err != nil {
		return err
	}
	p := c.products[i]
	c.products = slices.Delete(c.products, i, i+1)
	c.audit.Record("product deleted", fmt.Sprintf("%s (ID: %d)", p.Name, p.ID))
	return c.Save()
}

// LowStock returns the products whose stock is strictly below threshold.
func (c *Catalog) LowStock(threshold int) ([]Product, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: threshold %d is negative", ErrValidation, threshold)
	}
	var low []Product
	for _, p := range c.products {
		if p.Stock < threshold {
			low = append(low, p)
		}
	}
	return low, nil
}

// Products returns a copy of the catalog in creation order.
func (c *Catalog) Products() []Product { return slices.Clone(c.products) }

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// NextID returns the id the next created product will get.
func (c *Catalog) NextID() int { return c.nextID }

// take removes quantity from the stock of the product at index i.
// The caller checked the quantity against the stock.
func (c *Catalog) take(i int, quantity int) Product {
	c.products[i].Stock -= quantity
	return c.products[i]
}

// give puts quantity back in the stock of product id, if it still exists.
func (c *Catalog) give(id int, quantity int) {
	if i, err := c.index(id); err == nil {
		c.products[i].Stock += quantity
	}
}

// Save writes the whole catalog to its repository.
func (c *Catalog) Save() error {
	inventory := c.Products()
	if inventory == nil {
		inventory = []Product{}
	}
	return save("catalog", c.repo, CatalogData{Inventory: inventory, NextID: c.nextID})
}
