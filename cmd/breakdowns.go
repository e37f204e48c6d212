package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tickoo/fixedincome/renderer"
)

type breakdownsCmd struct {
	top int
}

func (*breakdownsCmd) Name() string     { return "breakdowns" }
func (*breakdownsCmd) Synopsis() string { return "display weighted breakdowns of every categorical column" }
func (*breakdownsCmd) Usage() string {
	return `fian breakdowns [-top <n>]

  Displays the market-value-weighted distribution of every text column in
  the holdings table (verbose free-text columns excluded), keeping the top
  N entries of each.
`
}

func (c *breakdownsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.top, "top", 10, "Number of entries kept per column")
}

func (c *breakdownsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyzer, err := LoadAnalyzer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BreakdownsMarkdown(analyzer.CategoricalBreakdowns(c.top)))
	return subcommands.ExitSuccess
}
