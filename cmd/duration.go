package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tickoo/fixedincome/renderer"
)

type durationCmd struct{}

func (*durationCmd) Name() string     { return "duration" }
func (*durationCmd) Synopsis() string { return "display the market-value-weighted portfolio duration" }
func (*durationCmd) Usage() string {
	return `fian duration

  Displays the market-value-weighted duration. The duration metric is
  located by case-insensitive substring match among column names; when none
  matches, the figure is reported as n/a.
`
}

func (*durationCmd) SetFlags(_ *flag.FlagSet) {}

func (c *durationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyzer, err := LoadAnalyzer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DurationMarkdown(analyzer.Duration()))
	return subcommands.ExitSuccess
}
