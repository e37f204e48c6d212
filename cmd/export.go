package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"github.com/tickoo/fixedincome"
)

// exportCmd runs every analysis and writes one flat CSV per report, for
// Tableau / Power BI integration. Directory creation lives here: the engine
// never touches the filesystem.
type exportCmd struct {
	dir    string
	prefix string
	date   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "run every analysis and export the results as CSV reports" }
func (*exportCmd) Usage() string {
	return `fian export [-dir <directory>] [-prefix <prefix>] [-d <date>]

  Runs the full set of analytics on the holdings file and writes each result
  as an independent flat CSV report: summary, credit distribution, one
  distribution per rating agency, sector and currency exposure, KRD profile,
  top holdings, duration, maturity buckets and the categorical breakdowns.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "exports", "Directory the report CSVs are written to")
	f.StringVar(&c.prefix, "prefix", "", "File name prefix (defaults to the portfolio label)")
	f.StringVar(&c.date, "d", fixedincome.Today().String(), "Evaluation date for the maturity figures")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.prefix == "" {
		c.prefix = strings.ReplaceAll(analyzer.Name(), " ", "_")
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating export directory: %v\n", err)
		return subcommands.ExitFailure
	}

	write := func(name string, export func(io.Writer) error) error {
		path := filepath.Join(c.dir, c.prefix+"_"+name+".csv")
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := export(out); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("Exported %s\n", path)
		return nil
	}

	exports := []struct {
		name   string
		export func(io.Writer) error
	}{
		{"summary", func(w io.Writer) error {
			return fixedincome.ExportSummary(w, analyzer.Summary(on))
		}},
		{"credit_distribution", func(w io.Writer) error {
			return fixedincome.ExportDistribution(w, "Rating", analyzer.CreditDistribution())
		}},
		{"sector_exposure", func(w io.Writer) error {
			return fixedincome.ExportDistribution(w, "Sector", analyzer.SectorExposure())
		}},
		{"currency_exposure", func(w io.Writer) error {
			return fixedincome.ExportDistribution(w, "Currency", analyzer.CurrencyExposure())
		}},
		{"krd_profile", func(w io.Writer) error {
			return fixedincome.ExportKRD(w, analyzer.KRDProfile())
		}},
		{"top_holdings", func(w io.Writer) error {
			return fixedincome.ExportHoldings(w, analyzer.TopHoldings(10))
		}},
		{"duration", func(w io.Writer) error {
			return fixedincome.ExportDuration(w, analyzer.Duration())
		}},
		{"maturity_buckets", func(w io.Writer) error {
			return fixedincome.ExportDistribution(w, "Maturity Bucket", analyzer.MaturityBuckets(on))
		}},
	}
	for _, e := range exports {
		if err := write(e.name, e.export); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting %s: %v\n", e.name, err)
			return subcommands.ExitFailure
		}
	}

	// one file per rating agency column, and per categorical breakdown
	for _, d := range analyzer.RatingDistributions() {
		d := d
		name := strings.ReplaceAll(d.Dimension, " ", "_") + "_distribution"
		if err := write(name, func(w io.Writer) error {
			return fixedincome.ExportDistribution(w, "Rating", d)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting %s: %v\n", name, err)
			return subcommands.ExitFailure
		}
	}
	for _, d := range analyzer.CategoricalBreakdowns(10) {
		d := d
		name := strings.ReplaceAll(d.Dimension, " ", "_") + "_breakdown"
		if err := write(name, func(w io.Writer) error {
			return fixedincome.ExportDistribution(w, d.Dimension, d)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting %s: %v\n", name, err)
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}
