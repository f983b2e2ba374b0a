package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/till/legacy"
	"github.com/google/subcommands"
)

type importCmd struct {
	from string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import the data files of the first version" }
func (*importCmd) Usage() string {
	return `cashier import -from <dir>

  Reads inventario.json, registro_ventas.txt, clientes.json, caja.json and
  usuarios.json from <dir> and replaces the matching stores of the till.
  Files that are absent leave their store untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", ".", "Folder of the legacy files.")
}

func (c *importCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	data, err := legacy.Import(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.from, err)
		return subcommands.ExitFailure
	}
	stores, closer, err := OpenStores(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the till in %q: %v\n", cfg.DataDir, err)
		return subcommands.ExitFailure
	}
	defer closer.Close()
	if err := data.Save(stores); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving the imported data: %v\n", err)
		return subcommands.ExitFailure
	}
	printImportSummary(os.Stdout, data)
	return subcommands.ExitSuccess
}

func printImportSummary(w io.Writer, d *legacy.Data) {
	if d.Catalog != nil {
		fmt.Fprintf(w, "imported %d products\n", len(d.Catalog.Inventory))
	}
	if d.Sales != nil {
		fmt.Fprintf(w, "imported %d sales\n", len(d.Sales))
	}
	if d.Customers != nil {
		fmt.Fprintf(w, "imported %d customers\n", len(d.Customers))
	}
	if d.Cash != nil {
		fmt.Fprintf(w, "imported the opening balance of %s\n", d.Cash.Date)
	}
	if d.Users != nil {
		fmt.Fprintf(w, "imported %d users\n", len(d.Users))
	}
	for _, f := range d.Missing {
		fmt.Fprintf(w, "skipped %s: not found\n", f)
	}
}
