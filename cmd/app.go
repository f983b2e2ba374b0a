// Package cmd implements the command line application of the till.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/till"
	"github.com/etnz/till/config"
	"github.com/etnz/till/store"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the cashier, in help order.
var Commands = []subcommands.Command{
	&sessionCmd{},
	&productsCmd{},
	&lowCmd{},
	&reportCmd{},
	&cashCmd{},
	&exportCmd{},
	&visitsCmd{},
	&manualCmd{},
	&importCmd{},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataDir  = flag.String("data-dir", "", "Folder of the till data files. Defaults to $"+config.EnvDataDir+" or .till")
	storage  = flag.String("storage", "", "Storage backend, 'file' or 'sqlite'. Defaults to $"+config.EnvStorage+" or file")
	currency = flag.String("currency", "", "Currency used to display amounts. Defaults to $"+config.EnvCurrency+" or USD")
	plain    = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")
	Verbose  = flag.Bool("v", false, "Verbose mode")
)

// Settings returns the configuration from the environment, overridden by
// the global flags.
func Settings() (config.Config, error) {
	cfg := config.Load()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *storage != "" {
		cfg.Storage = *storage
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *plain {
		cfg.Plain = true
	}
	return cfg, cfg.Validate()
}

// Store file names in the data directory.
const (
	CatalogFile   = "catalog.json"
	SalesFile     = "sales.json"
	CashFile      = "cash.json"
	CustomersFile = "customers.json"
	UsersFile     = "users.json"
	AuditFile     = "audit.log"
	DatabaseFile  = "till.db"
)

// closers closes every resource, in reverse order.
type closers []io.Closer

func (c closers) Close() error {
	var errs []error
	for i := len(c) - 1; i >= 0; i-- {
		errs = append(errs, c[i].Close())
	}
	return errors.Join(errs...)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStores returns the repositories of every store for cfg.
func OpenStores(cfg config.Config) (till.Stores, io.Closer, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return till.Stores{}, nil, fmt.Errorf("could not create data directory %q: %w", cfg.DataDir, err)
	}
	switch cfg.Storage {
	case config.StorageSQLite:
		db, err := store.OpenDB(cfg.Path(DatabaseFile))
		if err != nil {
			return till.Stores{}, nil, err
		}
		return till.Stores{
			Catalog:   store.NewSQLite[till.CatalogData](db, "catalog"),
			Ledger:    store.NewSQLite[[]till.Sale](db, "sales"),
			Cash:      store.NewSQLite[*till.CashRecord](db, "cash"),
			Customers: store.NewSQLite[[]till.Customer](db, "customers"),
			Users:     store.NewSQLite[[]till.User](db, "users"),
		}, db, nil
	default:
		return till.Stores{
			Catalog:   store.NewJSONFile[till.CatalogData](cfg.DataDir, CatalogFile),
			Ledger:    store.NewJSONFile[[]till.Sale](cfg.DataDir, SalesFile),
			Cash:      store.NewJSONFile[*till.CashRecord](cfg.DataDir, CashFile),
			Customers: store.NewJSONFile[[]till.Customer](cfg.DataDir, CustomersFile),
			Users:     store.NewJSONFile[[]till.User](cfg.DataDir, UsersFile),
		}, nopCloser{}, nil
	}
}

// OpenShop loads every store of cfg, with the audit trail in the data directory.
func OpenShop(cfg config.Config) (*till.Shop, io.Closer, error) {
	stores, storesCloser, err := OpenStores(cfg)
	if err != nil {
		return nil, nil, err
	}
	c := closers{storesCloser}
	audit, auditCloser, err := till.OpenAuditLog(cfg.Path(AuditFile))
	if err != nil {
		c.Close()
		return nil, nil, err
	}
	c = append(c, auditCloser)
	shop, err := till.Open(stores, audit)
	if err != nil {
		c.Close()
		return nil, nil, err
	}
	shop.Currency = cfg.Currency
	if cfg.Abandon == config.AbandonRestore {
		shop.Abandon = till.RestoreStock
	}
	return shop, c, nil
}

// openShop opens the shop from the global settings, reporting errors on stderr.
func openShop() (*till.Shop, config.Config, io.Closer, bool) {
	cfg, err := Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return nil, cfg, nil, false
	}
	shop, closer, err := OpenShop(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the till in %q: %v\n", cfg.DataDir, err)
		return nil, cfg, nil, false
	}
	return shop, cfg, closer, true
}

// printer writes markdown documents, rendered for the terminal unless plain.
type printer struct {
	w     io.Writer
	plain bool
}

func (p printer) markdown(doc string) {
	if p.plain {
		fmt.Fprint(p.w, doc)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(p.w, doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Fprint(p.w, doc)
		return
	}
	fmt.Fprint(p.w, out)
}

func (p printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// printMarkdown prints a markdown document on stdout.
func printMarkdown(cfg config.Config, doc string) {
	printer{w: os.Stdout, plain: cfg.Plain}.markdown(doc)
}
