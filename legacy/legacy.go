// Package legacy imports the data files of the first version of the till,
// a single-folder program with Spanish file and field names.
//
// Files are read with JSONPath queries so that extra or missing fields in
// hand-edited files do not prevent the import.
package legacy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/till"
	"github.com/etnz/till/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Files of the first version of the till.
const (
	InventoryFile = "inventario.json"
	SalesFile     = "registro_ventas.txt"
	CustomersFile = "clientes.json"
	CashFile      = "caja.json"
	UsersFile     = "usuarios.json"
)

// Data is the content of a legacy folder converted to the till model.
// Stores whose file is absent are nil and listed in Missing.
type Data struct {
	Catalog   *till.CatalogData
	Sales     []till.Sale
	Cash      *till.CashRecord
	Customers []till.Customer
	Users     []till.User
	Missing   []string
}

// ticketSpace derives stable ticket ids, so that importing twice yields the
// same tickets.
var ticketSpace = uuid.MustParse("5b1d6f0e-3c4a-4d2e-9f57-2a8c1e0b7d43")

// Import reads every legacy file found in dir.
func Import(dir string) (*Data, error) {
	d := &Data{}
	steps := []struct {
		file string
		read func(any) error
	}{
		{InventoryFile, d.readInventory},
		{SalesFile, d.readSales},
		{CustomersFile, d.readCustomers},
		{CashFile, d.readCash},
		{UsersFile, d.readUsers},
	}
	for _, step := range steps {
		v, err := decodeFile(filepath.Join(dir, step.file))
		if errors.Is(err, fs.ErrNotExist) {
			d.Missing = append(d.Missing, step.file)
			continue
		}
		if err != nil {
			return nil, err
		}
		if err := step.read(v); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", step.file, err)
		}
	}
	return d, nil
}

// Save writes the imported stores, overwriting them.
func (d *Data) Save(s till.Stores) error {
	var errs []error
	if d.Catalog != nil {
		errs = append(errs, s.Catalog.Save(*d.Catalog))
	}
	if d.Sales != nil {
		errs = append(errs, s.Ledger.Save(d.Sales))
	}
	if d.Cash != nil {
		errs = append(errs, s.Cash.Save(d.Cash))
	}
	if d.Customers != nil {
		errs = append(errs, s.Customers.Save(d.Customers))
	}
	if d.Users != nil {
		errs = append(errs, s.Users.Save(d.Users))
	}
	return errors.Join(errs...)
}

func decodeFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	return v, nil
}

// list returns the elements matched by path.
func list(v any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, v)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	l, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q: not a list", path)
	}
	return l, nil
}

// first returns the value at path, or nil when absent.
func first(v any, path string) any {
	jval, err := jsonpath.Get(path, v)
	if err != nil {
		return nil
	}
	// a wildcard path returns a list: keep its first value.
	if l, ok := jval.([]any); ok {
		if len(l) == 0 {
			return nil
		}
		jval = l[0]
	}
	return jval
}

func str(v any, path string) string {
	switch s := first(v, path).(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

func number(v any, path string) (decimal.Decimal, error) {
	switch n := first(v, path).(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	default:
		return decimal.Zero, fmt.Errorf("%q: not a number: %v", path, n)
	}
}

func integer(v any, path string) (int, error) {
	d, err := number(v, path)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%q: %s is not an integer", path, d)
	}
	return int(d.IntPart()), nil
}

func (d *Data) readInventory(v any) error {
	items, err := list(v, "$.inventario[*]")
	if err != nil {
		return err
	}
	c := &till.CatalogData{Inventory: []till.Product{}}
	for i, item := range items {
		var p till.Product
		var errs []error
		p.Name = str(item, "$.nombre")
		p.ID, err = integer(item, "$.id")
		errs = append(errs, err)
		p.UnitPrice, err = number(item, "$.precio")
		errs = append(errs, err)
		p.Stock, err = integer(item, "$.stock")
		errs = append(errs, err)
		if err := errors.Join(errs...); err != nil {
			return fmt.Errorf("product #%d: %w", i, err)
		}
		c.Inventory = append(c.Inventory, p)
	}
	// older files have no counter.
	if next, err := integer(v, "$.siguiente_id"); err == nil {
		c.NextID = next
	}
	for _, p := range c.Inventory {
		if p.ID >= c.NextID {
			c.NextID = p.ID + 1
		}
	}
	d.Catalog = c
	return nil
}

func (d *Data) readSales(v any) error {
	sales, err := list(v, "$[*]")
	if err != nil {
		return err
	}
	d.Sales = make([]till.Sale, 0, len(sales))
	for i, s := range sales {
		fecha := str(s, "$.fecha")
		ts, err := till.ParseTimestamp(fecha)
		if err != nil {
			return fmt.Errorf("sale #%d: %w", i, err)
		}
		items, err := list(s, "$.items[*]")
		if err != nil {
			return fmt.Errorf("sale #%d: %w", i, err)
		}
		sale := till.Sale{
			Ticket:        uuid.NewSHA1(ticketSpace, fmt.Appendf(nil, "%d|%s", i, fecha)),
			Timestamp:     ts,
			Lines:         make([]till.CartLine, 0, len(items)),
			CustomerName:  str(s, "$.cliente"),
			NextVisitDate: str(s, "$.proxima_visita"),
		}
		for j, item := range items {
			line := till.CartLine{Name: str(item, "$.nombre")}
			var errs []error
			line.Quantity, err = integer(item, "$.cantidad")
			errs = append(errs, err)
			line.Subtotal, err = number(item, "$.subtotal")
			errs = append(errs, err)
			if err := errors.Join(errs...); err != nil {
				return fmt.Errorf("sale #%d line #%d: %w", i, j, err)
			}
			sale.Lines = append(sale.Lines, line)
		}
		sale.Total, err = number(s, "$.total")
		if err != nil {
			return fmt.Errorf("sale #%d: %w", i, err)
		}
		if !sale.Total.Equal(sale.LinesTotal()) {
			log.Printf("warning, legacy sale %s total %s differs from its lines %s", fecha, sale.Total, sale.LinesTotal())
		}
		d.Sales = append(d.Sales, sale)
	}
	return nil
}

func (d *Data) readCustomers(v any) error {
	customers, err := list(v, "$[*]")
	if err != nil {
		return err
	}
	d.Customers = make([]till.Customer, 0, len(customers))
	for _, c := range customers {
		name := strings.TrimSpace(str(c, "$.nombre"))
		if name == "" {
			continue
		}
		d.Customers = append(d.Customers, till.Customer{Name: name, NextVisitDate: str(c, "$.proxima_visita")})
	}
	return nil
}

func (d *Data) readCash(v any) error {
	day, err := date.Parse(str(v, "$.fecha"))
	if err != nil {
		return err
	}
	balance, err := number(v, "$.monto_inicial")
	if err != nil {
		return err
	}
	d.Cash = &till.CashRecord{Date: day, OpeningBalance: balance}
	return nil
}

func (d *Data) readUsers(v any) error {
	users, err := list(v, "$[*]")
	if err != nil {
		return err
	}
	d.Users = make([]till.User, 0, len(users))
	for i, u := range users {
		role, err := till.ParseRole(str(u, "$.rol"))
		if err != nil {
			return fmt.Errorf("user #%d: %w", i, err)
		}
		// passwords were stored in clear.
		hash, err := till.HashPassword(str(u, "$.password"))
		if err != nil {
			return fmt.Errorf("user #%d: %w", i, err)
		}
		d.Users = append(d.Users, till.User{Name: str(u, "$.nombre"), PasswordHash: hash, Role: role})
	}
	return nil
}
