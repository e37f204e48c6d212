package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tickoo/fixedincome/renderer"
)

type krdCmd struct{}

func (*krdCmd) Name() string     { return "krd" }
func (*krdCmd) Synopsis() string { return "display the key-rate duration profile" }
func (*krdCmd) Usage() string {
	return `fian krd

  Displays the portfolio-level market-value-weighted key-rate duration
  contribution per tenor bucket (2Y, 5Y, 6M...), in tenor column order.
`
}

func (*krdCmd) SetFlags(_ *flag.FlagSet) {}

func (c *krdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyzer, err := LoadAnalyzer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.KRDMarkdown(analyzer.KRDProfile()))
	return subcommands.ExitSuccess
}
