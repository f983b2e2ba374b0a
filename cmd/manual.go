package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/till/docs"
	"github.com/google/subcommands"
)

type manualCmd struct{}

func (*manualCmd) Name() string     { return "manual" }
func (*manualCmd) Synopsis() string { return "show the user manual" }
func (*manualCmd) Usage() string {
	return `cashier manual [<topic>...]

  Shows the user manual. Without a topic, lists the topics. "*" shows them all.
`
}

func (*manualCmd) SetFlags(*flag.FlagSet) {}

func (*manualCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg, _ := Settings()
	printMarkdown(cfg, doc)
	return subcommands.ExitSuccess
}
