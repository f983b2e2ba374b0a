// Command cashier is the point of sale of a small shop: products, sales,
// cash drawer, customers and sales reports.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/etnz/till/cmd"
	"github.com/etnz/till/config"
	"github.com/etnz/till/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	log.SetFlags(0)
	if *cmd.Verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a builtin subcommand.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		if sc.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	days := predict.Set{"0d", "-1d", "-1w", "-1m"}
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
			"storage":  predict.Set{config.StorageFile, config.StorageSQLite},
			"currency": predict.Set{"USD", "EUR", "GBP", "ARS", "MXN"},
			"plain":    predict.Nothing,
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"session":  {Flags: map[string]complete.Predictor{"export-dir": predict.Dirs("*")}},
			"products": {},
			"low":      {Flags: map[string]complete.Predictor{"t": predict.Something}},
			"report": {
				Args: predict.Set(cmd.ReportKinds),
				Flags: map[string]complete.Predictor{
					"d":      days,
					"s":      days,
					"p":      predict.Something,
					"period": predict.Set{"day", "week", "month"},
				},
			},
			"cash": {Flags: map[string]complete.Predictor{"open": predict.Something}},
			"export": {
				Flags: map[string]complete.Predictor{
					"o": predict.Files("*.csv"),
					"s": days,
					"d": days,
				},
			},
			"visits":   {Flags: map[string]complete.Predictor{"all": predict.Nothing}},
			"manual":   {Args: predict.Set(append(topics, "*"))},
			"import":   {Flags: map[string]complete.Predictor{"from": predict.Dirs("*")}},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
