package cmd

import (
	"context"
	"flag"

	"github.com/etnz/till/date"
	"github.com/etnz/till/renderer"
	"github.com/google/subcommands"
)

type visitsCmd struct {
	all bool
}

func (*visitsCmd) Name() string     { return "visits" }
func (*visitsCmd) Synopsis() string { return "list the upcoming customer visits" }
func (*visitsCmd) Usage() string {
	return `cashier visits [-all]

  Lists the customers expected from today on, soonest first.
`
}

func (c *visitsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List every registered customer instead.")
}

func (c *visitsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop, cfg, closer, ok := openShop()
	if !ok {
		return subcommands.ExitFailure
	}
	defer closer.Close()
	if c.all {
		printMarkdown(cfg, renderer.CustomersMarkdown(shop.Customers.All()))
		return subcommands.ExitSuccess
	}
	printMarkdown(cfg, renderer.VisitsMarkdown(shop.Customers.Upcoming(date.Today())))
	return subcommands.ExitSuccess
}
