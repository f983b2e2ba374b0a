package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/till"
	"github.com/etnz/till/date"
	"github.com/etnz/till/renderer"
	"github.com/google/subcommands"
)

// Report kinds of the report command.
var ReportKinds = []string{"summary", "range", "product", "never", "period", "buckets"}

type reportCmd struct {
	date    string
	start   string
	product string
	period  string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a sales report" }
func (*reportCmd) Usage() string {
	return `cashier report [summary|range|product|never|period|buckets] [flags]

  summary  opening balance, revenue, closing balance and most sold product of a day (-d)
  range    sales from -s to -d, both included
  product  quantities and revenue of the product named by -p
  never    catalog products that were never sold
  period   sales of the day, week or month (-period) containing -d
  buckets  revenue by day, week or month (-period)

  Dates accept YYYY-MM-DD and relative forms like -1d, -2w or 0d for today.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Day of the summary or of the period, or end of the range.")
	f.StringVar(&c.start, "s", "", "Start of the range. Defaults to the end.")
	f.StringVar(&c.product, "p", "", "Product name for the product report.")
	f.StringVar(&c.period, "period", "day", "Period of the period and buckets reports: day, week or month.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind := "summary"
	if f.NArg() > 0 {
		kind = f.Arg(0)
	}
	shop, cfg, closer, ok := openShop()
	if !ok {
		return subcommands.ExitFailure
	}
	defer closer.Close()

	doc, err := c.render(shop, kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(cfg, doc)
	return subcommands.ExitSuccess
}

func (c *reportCmd) render(shop *till.Shop, kind string) (string, error) {
	end, err := till.ParseDay(c.date)
	if err != nil {
		return "", err
	}
	switch kind {
	case "summary":
		return renderer.SummaryMarkdown(shop.Summary(end), shop.Currency), nil
	case "range":
		start := end
		if c.start != "" {
			if start, err = till.ParseDay(c.start); err != nil {
				return "", err
			}
		}
		sales, err := shop.Ledger.ByDateRange(start, end)
		if err != nil {
			return "", err
		}
		return renderer.RangeMarkdown(start, end, sales, shop.Currency), nil
	case "product":
		if c.product == "" {
			return "", fmt.Errorf("%w: the product report needs -p <name>", till.ErrValidation)
		}
		return renderer.ProductHistoryMarkdown(shop.Ledger.ProductHistory(c.product), shop.Currency), nil
	case "never":
		return renderer.NeverSoldMarkdown(shop.Ledger.NeverSold(shop.Catalog)), nil
	case "period":
		p, err := date.ParsePeriod(c.period)
		if err != nil {
			return "", fmt.Errorf("%w: %w", till.ErrValidation, err)
		}
		r, sales := shop.Ledger.ByPeriod(end, p)
		return renderer.RangeMarkdown(r.From, r.To, sales, shop.Currency), nil
	case "buckets":
		p, err := date.ParsePeriod(c.period)
		if err != nil {
			return "", fmt.Errorf("%w: %w", till.ErrValidation, err)
		}
		return renderer.BucketsMarkdown(p, shop.Ledger.BucketedTotals(p), shop.Currency), nil
	default:
		return "", fmt.Errorf("%w: unknown report %q, want one of %v", till.ErrValidation, kind, ReportKinds)
	}
}
