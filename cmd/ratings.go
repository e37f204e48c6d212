package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tickoo/fixedincome/renderer"
)

type ratingsCmd struct{}

func (*ratingsCmd) Name() string     { return "ratings" }
func (*ratingsCmd) Synopsis() string { return "display the rating distribution of each agency column" }
func (*ratingsCmd) Usage() string {
	return `fian ratings

  Displays one market-value-weighted rating distribution per rating column
  found in the holdings table (Moody, S&P, Fitch, MSCI...), each sorted by
  rating label.
`
}

func (*ratingsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *ratingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyzer, err := LoadAnalyzer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	dists := analyzer.RatingDistributions()
	if len(dists) == 0 {
		fmt.Println("No rating columns found in the holdings table.")
		return subcommands.ExitSuccess
	}
	for _, d := range dists {
		printMarkdown(renderer.DistributionMarkdown("Rating Distribution", d))
	}
	return subcommands.ExitSuccess
}
