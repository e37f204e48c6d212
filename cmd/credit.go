package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tickoo/fixedincome/renderer"
)

type creditCmd struct{}

func (*creditCmd) Name() string     { return "credit" }
func (*creditCmd) Synopsis() string { return "display the composite credit quality distribution" }
func (*creditCmd) Usage() string {
	return `fian credit

  Displays the market-value-weighted credit quality distribution, grouped by
  the composite rating (first non-missing agency rating in priority order
  Fitch, Moody, S&P, MSCI).
`
}

func (*creditCmd) SetFlags(_ *flag.FlagSet) {}

func (c *creditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyzer, err := LoadAnalyzer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DistributionMarkdown("Credit Distribution", analyzer.CreditDistribution()))
	return subcommands.ExitSuccess
}
