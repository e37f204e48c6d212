// Package cmd implements the CLI application to analyze fixed income
// portfolio holdings.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"github.com/tickoo/fixedincome"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "analytics")
	c.Register(&durationCmd{}, "analytics")
	c.Register(&creditCmd{}, "analytics")
	c.Register(&ratingsCmd{}, "analytics")
	c.Register(&sectorCmd{}, "analytics")
	c.Register(&currencyCmd{}, "analytics")
	c.Register(&maturityCmd{}, "analytics")
	c.Register(&krdCmd{}, "analytics")
	c.Register(&holdingsCmd{}, "analytics")
	c.Register(&breakdownsCmd{}, "analytics")

	c.Register(&exportCmd{}, "reports")
	c.Register(&combineCmd{}, "reports")

	c.Register(&serveCmd{}, "dashboard")
	c.Register(&assistCmd{}, "dashboard")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var holdingsFile = flag.String("holdings", "holdings.csv", "Path to the cleaned holdings file (CSV, or JSON with -json-rows)")
var portfolioName = flag.String("portfolio", "", "Portfolio label used in reports (defaults to the holdings file name)")
var reportingCurrency = flag.String("currency", "USD", "Reporting currency for market values (display only)")
var jsonRows = flag.String("json-rows", fixedincome.DefaultRowsPath, "jsonpath selecting the holdings rows in a JSON file")

// LoadAnalyzer imports the app holdings file and builds the analyzer for it.
func LoadAnalyzer() (*fixedincome.Analyzer, error) {
	return loadAnalyzer(*holdingsFile, *portfolioName)
}

func loadAnalyzer(path, name string) (*fixedincome.Analyzer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open holdings file: %w", err)
	}
	defer f.Close()

	var t *fixedincome.Table
	if strings.EqualFold(filepath.Ext(path), ".json") {
		t, err = fixedincome.ImportJSON(f, *jsonRows)
	} else {
		t, err = fixedincome.ImportCSV(f)
	}
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return fixedincome.NewAnalyzer(t, name, *reportingCurrency)
}
