package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tickoo/fixedincome/renderer"
)

type currencyCmd struct{}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "display the currency exposure distribution" }
func (*currencyCmd) Usage() string {
	return `fian currency

  Displays the market-value-weighted currency exposure, largest share first.
`
}

func (*currencyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyzer, err := LoadAnalyzer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DistributionMarkdown("Currency Exposure", analyzer.CurrencyExposure()))
	return subcommands.ExitSuccess
}
