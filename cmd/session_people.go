package cmd

import (
	"strings"

	"github.com/etnz/till"
	"github.com/etnz/till/date"
	"github.com/etnz/till/renderer"
)

func (s *Session) registerCustomer() error {
	name, err := text(s.prompt, "Customer name: ")
	if err != nil {
		return err
	}
	next, err := s.prompt.Prompt("Next visit (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	c, err := s.shop.Customers.Register(name, next)
	if err != nil {
		return err
	}
	s.out.printf("Customer %q registered.\n", c.Name)
	return nil
}

func (s *Session) visits() error {
	s.out.markdown(renderer.VisitsMarkdown(s.shop.Customers.Upcoming(date.Today())))
	return nil
}

func (s *Session) registerUser() error {
	s.out.printf("Existing users: %s\n", strings.Join(s.shop.Users.Names(), ", "))
	name, err := text(s.prompt, "New user name: ")
	if err != nil {
		return err
	}
	password, err := text(s.prompt, "Password: ")
	if err != nil {
		return err
	}
	in, err := text(s.prompt, "Role (admin/cashier): ")
	if err != nil {
		return err
	}
	role, err := till.ParseRole(in)
	if err != nil {
		return err
	}
	u, err := s.shop.Users.Register(name, password, role)
	if err != nil {
		return err
	}
	s.out.printf("User %q registered as %s.\n", u.Name, u.Role)
	return nil
}
