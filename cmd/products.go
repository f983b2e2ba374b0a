package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/till"
	"github.com/etnz/till/renderer"
	"github.com/google/subcommands"
)

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the catalog" }
func (*productsCmd) Usage() string {
	return `cashier products

  Lists every product with its id, unit price and stock.
`
}

func (*productsCmd) SetFlags(*flag.FlagSet) {}

func (*productsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop, cfg, closer, ok := openShop()
	if !ok {
		return subcommands.ExitFailure
	}
	defer closer.Close()
	printMarkdown(cfg, renderer.CatalogMarkdown(shop.Catalog.Products(), shop.Currency))
	return subcommands.ExitSuccess
}

type lowCmd struct {
	threshold int
}

func (*lowCmd) Name() string     { return "low" }
func (*lowCmd) Synopsis() string { return "list the products running out of stock" }
func (*lowCmd) Usage() string {
	return `cashier low [-t <threshold>]

  Lists the products whose stock is strictly below the threshold.
`
}

func (c *lowCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.threshold, "t", till.LowStockLevel, "Stock threshold.")
}

func (c *lowCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop, cfg, closer, ok := openShop()
	if !ok {
		return subcommands.ExitFailure
	}
	defer closer.Close()
	low, err := shop.Catalog.LowStock(c.threshold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(cfg, renderer.LowStockMarkdown(low, c.threshold))
	return subcommands.ExitSuccess
}
