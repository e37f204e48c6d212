package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tickoo/fixedincome"
	"github.com/tickoo/fixedincome/renderer"
)

type maturityCmd struct {
	date string
}

func (*maturityCmd) Name() string     { return "maturity" }
func (*maturityCmd) Synopsis() string { return "display the maturity bucket distribution" }
func (*maturityCmd) Usage() string {
	return `fian maturity [-d <date>]

  Displays the market-value-weighted distribution over fixed maturity
  buckets (0-3y, 3-5y, 5-10y, 10-30y, 30y+), measured from the evaluation
  date. Already-matured positions are excluded.
`
}

func (c *maturityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", fixedincome.Today().String(), "Evaluation date for years-to-maturity")
}

func (c *maturityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := fixedincome.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	analyzer, err := LoadAnalyzer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DistributionMarkdown("Maturity Buckets", analyzer.MaturityBuckets(on)))
	return subcommands.ExitSuccess
}
