package cmd

import (
	"strconv"

	"github.com/etnz/till"
	"github.com/etnz/till/docs"
	"github.com/etnz/till/renderer"
	"github.com/shopspring/decimal"
)

func (s *Session) addProduct() error {
	name, err := text(s.prompt, "Product name: ")
	if err != nil {
		return err
	}
	price, err := amount(s.prompt, "Unit price: ")
	if err != nil {
		return err
	}
	stock, err := integer(s.prompt, "Initial stock: ")
	if err != nil {
		return err
	}
	p, err := s.shop.Catalog.Create(name, price, stock)
	if err != nil {
		return err
	}
	s.out.printf("Product %q added with id %d.\n", p.Name, p.ID)
	return nil
}

func (s *Session) listProducts() error {
	s.out.markdown(renderer.CatalogMarkdown(s.shop.Catalog.Products(), s.shop.Currency))
	return nil
}

// product asks for a product id and returns the product.
func (s *Session) product(label string) (till.Product, error) {
	id, err := integer(s.prompt, label)
	if err != nil {
		return till.Product{}, err
	}
	return s.shop.Catalog.Find(id)
}

func (s *Session) updateStock() error {
	if err := s.listProducts(); err != nil {
		return err
	}
	p, err := s.product("Product ID: ")
	if err != nil {
		return err
	}
	stock, err := integer(s.prompt, "New stock: ")
	if err != nil {
		return err
	}
	ok, err := confirm(s.prompt, "Change the stock of "+p.Name+" from "+strconv.Itoa(p.Stock)+" to "+strconv.Itoa(stock)+"?")
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	if err := s.shop.Catalog.UpdateStock(p.ID, stock); err != nil {
		return err
	}
	s.out.printf("Stock updated.\n")
	return nil
}

func (s *Session) modifyProduct() error {
	p, err := s.product("Product ID: ")
	if err != nil {
		return err
	}
	s.out.printf("Modifying %q (price: %s).\n", p.Name, s.shop.M(p.UnitPrice))
	// empty answers keep the current values.
	name, err := s.prompt.Prompt("New name (empty to keep): ")
	if err != nil {
		return err
	}
	if name != "" {
		if err := s.shop.Catalog.Rename(p.ID, name); err != nil {
			return err
		}
		s.out.printf("Name updated.\n")
	}
	in, err := s.prompt.Prompt("New price (empty to keep): ")
	if err != nil {
		return err
	}
	if in != "" {
		price, err := decimal.NewFromString(in)
		if err != nil {
			return errInvalidAmount(in)
		}
		if err := s.shop.Catalog.Reprice(p.ID, price); err != nil {
			return err
		}
		s.out.printf("Price updated.\n")
	}
	return nil
}

func (s *Session) lowStock() error {
	threshold := till.LowStockLevel
	in, err := s.prompt.Prompt("Stock threshold (empty for " + strconv.Itoa(threshold) + "): ")
	if err != nil {
		return err
	}
	if in != "" {
		if threshold, err = strconv.Atoi(in); err != nil {
			return errInvalidNumber(in)
		}
	}
	low, err := s.shop.Catalog.LowStock(threshold)
	if err != nil {
		return err
	}
	s.out.markdown(renderer.LowStockMarkdown(low, threshold))
	return nil
}

func (s *Session) deleteProduct() error {
	p, err := s.product("ID of the product to delete: ")
	if err != nil {
		return err
	}
	ok, err := confirm(s.prompt, "Delete "+p.Name+"?")
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	if err := s.shop.Catalog.Delete(p.ID); err != nil {
		return err
	}
	s.out.printf("Product %q deleted.\n", p.Name)
	return nil
}

func (s *Session) manual() error {
	doc, err := docs.GetTopic("session")
	if err != nil {
		return err
	}
	s.out.markdown(doc)
	return nil
}
