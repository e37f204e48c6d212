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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display total market value, weighted yield and average maturity" }
func (*summaryCmd) Usage() string {
	return `fian summary [-d <date>]

  Displays the portfolio summary: total market value, weighted yield to
  worst (when a "Yield to Worst" column exists) and average maturity in
  years measured from the evaluation date.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", fixedincome.Today().String(), "Evaluation date for the maturity figures")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.SummaryMarkdown(analyzer.Summary(on)))
	return subcommands.ExitSuccess
}
