package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/till"
	"github.com/etnz/till/date"
)

// menuEntry is an operation of a menu.
type menuEntry struct {
	label string
	admin bool // restricted to admin users
	run   func() error
}

// menu dispatches answers to entries by key, and lists them in order.
type menu struct {
	title   string
	exit    string // label of "0"
	order   []string
	entries map[string]menuEntry
}

func (m *menu) add(key, label string, run func() error) {
	m.order = append(m.order, key)
	if m.entries == nil {
		m.entries = make(map[string]menuEntry)
	}
	m.entries[key] = menuEntry{label: label, run: run}
}

func (m *menu) addAdmin(key, label string, run func() error) {
	m.add(key, label, run)
	e := m.entries[key]
	e.admin = true
	m.entries[key] = e
}

// Session is an interactive session of one operator.
type Session struct {
	shop      *till.Shop
	prompt    till.Prompter
	out       printer
	attempts  int
	exportDir string // default folder of CSV exports

	user till.User
}

// NewSession creates a session reading answers from in and printing to out.
func NewSession(shop *till.Shop, in io.Reader, out io.Writer, plain bool, attempts int) *Session {
	return &Session{
		shop:      shop,
		prompt:    newLinePrompter(in, out),
		out:       printer{w: out, plain: plain},
		attempts:  attempts,
		exportDir: ".",
	}
}

// Run logs the operator in, asks for the opening balance of the day, then
// serves the main menu until the operator quits or the input ends.
func (s *Session) Run() error {
	user, err := s.shop.Users.Login(s.prompt, s.attempts)
	if err != nil {
		return err
	}
	s.user = user
	defer s.shop.Users.Logout(user)
	s.out.printf("Welcome, %s! Session opened at %s (role: %s).\n", user.Name, till.Now(), user.Role)

	opening, err := s.shop.Cash.OpeningBalanceFor(date.Today(), s.prompt)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	s.out.printf("Opening balance: %s\n", s.shop.M(opening))

	return s.serve(s.mainMenu())
}

// serve prints m and runs the chosen entries until "0" or the end of input.
func (s *Session) serve(m *menu) error {
	for {
		s.printMenu(m)
		choice, err := s.prompt.Prompt("Choose an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		choice = strings.ToLower(choice)
		if choice == "0" {
			return nil
		}
		e, ok := m.entries[choice]
		if !ok {
			s.out.printf("Unknown option %q.\n", choice)
			continue
		}
		if e.admin && !s.user.IsAdmin() {
			s.report(fmt.Errorf("%w: %s is reserved to admins", till.ErrForbidden, e.label))
			continue
		}
		if err := e.run(); errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			s.report(err)
		}
	}
}

func (s *Session) printMenu(m *menu) {
	s.out.printf("\n--- %s ---\n", m.title)
	for _, key := range m.order {
		e := m.entries[key]
		if e.admin && !s.user.IsAdmin() {
			continue
		}
		s.out.printf("%s. %s\n", strings.ToUpper(key), e.label)
	}
	s.out.printf("0. %s\n", m.exit)
}

// report prints the outcome of a failed operation.
func (s *Session) report(err error) {
	switch {
	case errors.Is(err, errCancelled):
		s.out.printf("Operation cancelled.\n")
	case errors.Is(err, till.ErrPersistence):
		s.out.printf("Error: %v\nThe change is kept in memory but could not be saved.\n", err)
	default:
		s.out.printf("Error: %v\n", err)
	}
}

func (s *Session) mainMenu() *menu {
	m := &menu{title: "Main menu", exit: "Exit"}
	m.add("1", "Add product", s.addProduct)
	m.add("2", "List products", s.listProducts)
	m.add("3", "Update stock", s.updateStock)
	m.add("4", "Modify product", s.modifyProduct)
	m.add("5", "Low stock products", s.lowStock)
	m.add("6", "New sale", s.newSale)
	m.add("7", "Reports", func() error { return s.serve(s.reportsMenu()) })
	m.add("m", "User manual", s.manual)
	m.add("c", "Register customer", s.registerCustomer)
	m.add("v", "Upcoming customer visits", s.visits)
	m.addAdmin("8", "Delete product", s.deleteProduct)
	m.addAdmin("9", "Register user", s.registerUser)
	return m
}

func (s *Session) reportsMenu() *menu {
	m := &menu{title: "Reports", exit: "Back"}
	m.add("1", "General summary", s.summary)
	m.add("2", "Sales by date range", s.salesByRange)
	m.add("3", "Product history", s.productHistory)
	m.add("4", "Products never sold", s.neverSold)
	m.add("5", "Sales by period", s.salesByPeriod)
	m.add("6", "Sales by day", func() error { return s.buckets(date.Daily) })
	m.add("7", "Sales by week", func() error { return s.buckets(date.Weekly) })
	m.add("8", "Sales by month", func() error { return s.buckets(date.Monthly) })
	m.add("9", "Cash drawer", s.cash)
	m.add("e", "Export sales to CSV", s.export)
	return m
}
