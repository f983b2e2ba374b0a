package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/till"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
	start  string
	end    string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the sales as CSV" }
func (*exportCmd) Usage() string {
	return `cashier export [-o <file>] [-s <start>] [-d <end>]

  Writes one row per sale line: date, product, quantity and subtotal.
  Without -o the CSV is printed on the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file.")
	f.StringVar(&c.start, "s", "", "Export only the sales from this day.")
	f.StringVar(&c.end, "d", "", "Export only the sales up to this day.")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop, _, closer, ok := openShop()
	if !ok {
		return subcommands.ExitFailure
	}
	defer closer.Close()

	sales, err := c.sales(shop.Ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.output == "" {
		if err := till.ExportCSV(os.Stdout, sales); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	if err := exportCSV(c.output, sales); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Sales exported to %s\n", c.output)
	return subcommands.ExitSuccess
}

// sales returns the sales selected by the range flags.
func (c *exportCmd) sales(l *till.Ledger) ([]till.Sale, error) {
	if c.start == "" && c.end == "" {
		return l.Snapshot(), nil
	}
	start, end := "1970-01-01", "0d"
	if c.start != "" {
		start = c.start
	}
	if c.end != "" {
		end = c.end
	}
	from, err := till.ParseDay(start)
	if err != nil {
		return nil, err
	}
	to, err := till.ParseDay(end)
	if err != nil {
		return nil, err
	}
	return l.ByDateRange(from, to)
}
