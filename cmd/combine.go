package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/tickoo/fixedincome"
)

// combineCmd concatenates same-shaped report CSVs from several portfolios
// into one combined table, keeping a single header row.
type combineCmd struct {
	output string
}

func (*combineCmd) Name() string     { return "combine" }
func (*combineCmd) Synopsis() string { return "combine same-shaped report CSVs into one table" }
func (*combineCmd) Usage() string {
	return `fian combine -o <output.csv> <report.csv> [<report.csv> ...]

  Concatenates report CSVs exported from several portfolios (e.g. the USD
  and EUR sector exposures) into one combined CSV, keeping only the first
  header row.
`
}

func (c *combineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Path of the combined CSV (required)")
}

func (c *combineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" || f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: -o and at least one input report are required")
		return subcommands.ExitUsageError
	}

	var readers []io.Reader
	for _, path := range f.Args() {
		in, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening report %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		defer in.Close()
		readers = append(readers, in)
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := fixedincome.CombineReports(out, readers...); err != nil {
		fmt.Fprintf(os.Stderr, "Error combining reports: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Combined %d reports into %s\n", f.NArg(), c.output)
	return subcommands.ExitSuccess
}
