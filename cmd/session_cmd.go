package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/till"
	"github.com/google/subcommands"
)

type sessionCmd struct {
	exportDir string
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "open an interactive cashier session" }
func (*sessionCmd) Usage() string {
	return `cashier session [-export-dir <dir>]

  Logs in, asks for the opening balance of the day on the first session of
  the day, then serves the main menu: products, sales, reports, customers
  and, for admins, product deletion and user registration.

  An empty answer cancels the current operation. End of input closes the
  session.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exportDir, "export-dir", ".", "Default folder for CSV exports.")
}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop, cfg, closer, ok := openShop()
	if !ok {
		return subcommands.ExitFailure
	}
	defer closer.Close()

	s := NewSession(shop, os.Stdin, os.Stdout, cfg.Plain, cfg.LoginAttempts)
	s.exportDir = c.exportDir
	if err := s.Run(); errors.Is(err, till.ErrTooManyAttempts) {
		fmt.Fprintln(os.Stderr, "Too many failed login attempts. Leaving.")
		return subcommands.ExitFailure
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Session error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Session closed. Goodbye!")
	return subcommands.ExitSuccess
}
