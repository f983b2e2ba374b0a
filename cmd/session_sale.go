package cmd

import (
	"errors"
	"strconv"
	"strings"

	"github.com/etnz/till"
	"github.com/etnz/till/renderer"
)

// customer asks who the sale is for. A registered customer is picked by
// number; otherwise a new one is registered when a name is given.
func (s *Session) customer() (till.Customer, error) {
	registered, err := confirm(s.prompt, "Is the sale for a registered customer?")
	if err != nil {
		return till.Customer{}, err
	}
	if registered {
		customers := s.shop.Customers.All()
		if len(customers) == 0 {
			s.out.printf("No customer registered.\n")
			return till.Customer{}, nil
		}
		s.out.markdown(renderer.CustomersMarkdown(customers))
		i, err := integer(s.prompt, "Customer number (empty to cancel): ")
		if err != nil {
			return till.Customer{}, err
		}
		if i < 1 || i > len(customers) {
			return till.Customer{}, errCancelled
		}
		return customers[i-1], nil
	}
	name, err := s.prompt.Prompt("Customer name (empty for none): ")
	if err != nil || name == "" {
		return till.Customer{}, err
	}
	next, err := s.prompt.Prompt("Next visit (YYYY-MM-DD): ")
	if err != nil {
		return till.Customer{}, err
	}
	return s.shop.Customers.Register(name, next)
}

func (s *Session) newSale() error {
	if s.shop.Catalog.Len() == 0 {
		s.out.printf("The catalog is empty, nothing to sell.\n")
		return nil
	}
	customer, err := s.customer()
	if err != nil {
		return err
	}
	sale := s.shop.OpenSale(customer)
	for {
		s.out.markdown(renderer.CatalogMarkdown(s.shop.Catalog.Products(), s.shop.Currency))
		if lines := sale.Lines(); len(lines) > 0 {
			s.out.markdown(renderer.CartMarkdown(lines, s.shop.Currency))
		}
		in, err := s.prompt.Prompt("Product ID (empty to finish, x to cancel the sale): ")
		if err != nil {
			return errors.Join(err, sale.Abandon())
		}
		if in == "" {
			break
		}
		if strings.EqualFold(in, "x") {
			if err := sale.Abandon(); err != nil {
				return err
			}
			s.out.printf("Sale cancelled.\n")
			return nil
		}
		id, err := strconv.Atoi(in)
		if err != nil {
			s.report(errInvalidNumber(in))
			continue
		}
		if err := s.addLine(sale, id); errors.Is(err, errCancelled) {
			s.report(err)
		} else if err != nil {
			return errors.Join(err, sale.Abandon())
		}
	}
	if len(sale.Lines()) == 0 {
		s.out.printf("No sale recorded.\n")
		return sale.Abandon()
	}
	committed, err := sale.Commit()
	switch {
	case errors.Is(err, till.ErrPersistence):
		s.report(err)
	case err != nil:
		return err
	}
	s.out.markdown(renderer.TicketMarkdown(committed, s.shop.Currency))
	return nil
}

// addLine asks for the quantity of product id until it is added or
// cancelled. Only input errors are returned.
func (s *Session) addLine(sale *till.Composer, id int) error {
	p, err := s.shop.Catalog.Find(id)
	if err != nil {
		s.report(err)
		return nil
	}
	for {
		quantity, err := integer(s.prompt, "Quantity of "+p.Name+" (empty to cancel): ")
		if errors.Is(err, till.ErrValidation) {
			s.report(err)
			continue
		}
		if err != nil {
			return err
		}
		res, err := sale.AddLine(id, quantity)
		switch {
		case errors.Is(err, till.ErrValidation):
			s.report(err)
			continue
		case errors.Is(err, till.ErrInsufficientStock):
			s.report(err)
			return nil
		case err != nil && !errors.Is(err, till.ErrPersistence):
			return err
		case err != nil:
			s.report(err)
		}
		s.out.printf("%d x %s added to the cart.\n", res.Line.Quantity, res.Line.Name)
		if res.LowStock {
			s.out.printf("Warning: only %d %s left in stock.\n", res.Stock, res.Line.Name)
		}
		return nil
	}
}
