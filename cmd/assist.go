package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/tickoo/fixedincome"
	"github.com/tickoo/fixedincome/agent"
	"github.com/tickoo/fixedincome/renderer"
)

// assistCmd starts an interactive session with the AI analyst.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI analyst" }
func (*assistCmd) Usage() string {
	return `fian assist [initial question]

  Computes every analysis for the holdings file and starts an interactive
  analyst grounded in those reports. Requires Gemini credentials in the
  environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	analyzer, err := LoadAnalyzer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(analyzer.Name(), allReportsMarkdown(analyzer))
	a := agent.New(os.Stdout, os.Stdin, analyst)
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// allReportsMarkdown renders every analysis into one markdown document, the
// grounding context handed to the analyst.
func allReportsMarkdown(analyzer *fixedincome.Analyzer) string {
	today := fixedincome.Today()
	var sections []string
	sections = append(sections,
		renderer.SummaryMarkdown(analyzer.Summary(today)),
		renderer.DurationMarkdown(analyzer.Duration()),
		renderer.DistributionMarkdown("Credit Distribution", analyzer.CreditDistribution()),
		renderer.DistributionMarkdown("Sector Exposure", analyzer.SectorExposure()),
		renderer.DistributionMarkdown("Currency Exposure", analyzer.CurrencyExposure()),
		renderer.DistributionMarkdown("Maturity Buckets", analyzer.MaturityBuckets(today)),
		renderer.KRDMarkdown(analyzer.KRDProfile()),
		renderer.HoldingsMarkdown(analyzer.TopHoldings(10)),
	)
	for _, d := range analyzer.RatingDistributions() {
		sections = append(sections, renderer.DistributionMarkdown("Rating Distribution", d))
	}
	return strings.Join(sections, "\n\n")
}
