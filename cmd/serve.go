package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/tickoo/fixedincome"
	"github.com/tickoo/fixedincome/server"
)

// serveCmd starts the dashboard JSON API. Each positional argument loads one
// portfolio, either "name=path" or a bare path (labelled by file name); with
// no arguments the app holdings file is served.
type serveCmd struct {
	addr    string
	verbose bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the analytics as a dashboard JSON API" }
func (*serveCmd) Usage() string {
	return `fian serve [-addr <host:port>] [name=holdings.csv ...]

  Loads one analyzer per holdings file and serves every analysis over HTTP:

    GET /api/portfolios
    GET /api/portfolios/{name}/summary?date=2026-01-01
    GET /api/portfolios/{name}/credit | sector | currency | maturity | krd
    GET /api/portfolios/{name}/holdings?n=10
    GET /api/portfolios/{name}/ratings | duration | breakdowns
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "localhost:8080", "Address the dashboard API listens on")
	f.BoolVar(&c.verbose, "v", false, "Log every request")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	level := zerolog.InfoLevel
	if c.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	args := f.Args()
	if len(args) == 0 {
		args = []string{*holdingsFile}
	}

	portfolios := make(map[string]*fixedincome.Analyzer, len(args))
	for _, arg := range args {
		name, path, found := strings.Cut(arg, "=")
		if !found {
			name, path = "", arg
		}
		analyzer, err := loadAnalyzer(path, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading holdings %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		portfolios[analyzer.Name()] = analyzer
		log.Info().Str("portfolio", analyzer.Name()).Str("path", path).Msg("loaded holdings")
	}

	if err := server.New(log, portfolios).Start(ctx, c.addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error running dashboard server: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
