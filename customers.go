package till

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/till/date"
)

// Customers is the append-only list of registered customers. Names are not
// unique.
type Customers struct {
	list []Customer
	repo Repository[[]Customer]
}

// NewCustomers loads the customers from repo.
func NewCustomers(repo Repository[[]Customer]) *Customers {
	return &Customers{list: load("customers", repo), repo: repo}
}

// Register appends a customer. nextVisit is free text, usually a date.
func (c *Customers) Register(name, nextVisit string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, fmt.Errorf("%w: customer name is empty", ErrValidation)
	}
	cu := Customer{Name: name, NextVisitDate: strings.TrimSpace(nextVisit)}
	c.list = append(c.list, cu)
	return cu, save("customers", c.repo, c.list)
}

// All returns the customers in registration order.
func (c *Customers) All() []Customer { return slices.Clone(c.list) }

// Upcoming returns the customers expected on or after from, soonest first.
// Customers whose next visit is not a date are skipped.
func (c *Customers) Upcoming(from date.Date) []Customer {
	type visit struct {
		on date.Date
		c  Customer
	}
	var visits []visit
	for _, cu := range c.list {
		on, err := date.Parse(cu.NextVisitDate)
		if err != nil || on.Before(from) {
			continue
		}
		visits = append(visits, visit{on, cu})
	}
	slices.SortStableFunc(visits, func(a, b visit) int {
		switch {
		case a.on.Before(b.on):
			return -1
		case a.on.After(b.on):
			return 1
		}
		return 0
	})
	upcoming := make([]Customer, len(visits))
	for i, v := range visits {
		upcoming[i] = v.c
	}
	return upcoming
}
