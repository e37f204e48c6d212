package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tickoo/fixedincome/renderer"
)

type sectorCmd struct{}

func (*sectorCmd) Name() string     { return "sector" }
func (*sectorCmd) Synopsis() string { return "display the sector exposure distribution" }
func (*sectorCmd) Usage() string {
	return `fian sector

  Displays the market-value-weighted sector exposure, largest share first.
`
}

func (*sectorCmd) SetFlags(_ *flag.FlagSet) {}

func (c *sectorCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analyzer, err := LoadAnalyzer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DistributionMarkdown("Sector Exposure", analyzer.SectorExposure()))
	return subcommands.ExitSuccess
}
