package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/till/date"
	"github.com/etnz/till/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type cashCmd struct {
	open string
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "display the cash drawer of today" }
func (*cashCmd) Usage() string {
	return `cashier cash [-open <amount>]

  Displays the opening balance of today, the revenue and the amount expected
  in the drawer. With -open, declares the opening balance of today first.
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.open, "open", "", "Declare the opening balance of today.")
}

func (c *cashCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var balance decimal.Decimal
	if c.open != "" {
		var err error
		if balance, err = decimal.NewFromString(c.open); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid opening balance %q: %v\n", c.open, err)
			return subcommands.ExitUsageError
		}
	}
	shop, cfg, closer, ok := openShop()
	if !ok {
		return subcommands.ExitFailure
	}
	defer closer.Close()

	today := date.Today()
	if c.open != "" {
		if err := shop.Cash.Open(today, balance); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	summary := shop.Summary(today)
	printMarkdown(cfg, renderer.CashMarkdown(summary, summary.ClosingBalance(), shop.Currency))
	return subcommands.ExitSuccess
}
