package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tickoo/fixedincome/renderer"
)

type holdingsCmd struct {
	n int
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the largest issuers by market value" }
func (*holdingsCmd) Usage() string {
	return `fian holdings [-n <count>]

  Displays the top holdings: positions grouped and summed by issuer, the
  largest first.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 10, "Number of issuers to display")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyzer, err := LoadAnalyzer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HoldingsMarkdown(analyzer.TopHoldings(c.n)))
	return subcommands.ExitSuccess
}
