package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/tickoo/fixedincome/cmd"
)

func main() {
	// Shell completion for the subcommands and the app flags; invoked and
	// exited here when COMP_LINE is set, a no-op otherwise.
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"summary":    {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"duration":   {},
			"credit":     {},
			"ratings":    {},
			"sector":     {},
			"currency":   {},
			"maturity":   {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"krd":        {},
			"holdings":   {Flags: map[string]complete.Predictor{"n": predict.Nothing}},
			"breakdowns": {Flags: map[string]complete.Predictor{"top": predict.Nothing}},
			"export":     {Flags: map[string]complete.Predictor{"dir": predict.Dirs("*"), "prefix": predict.Nothing, "d": predict.Nothing}},
			"combine":    {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}, Args: predict.Files("*.csv")},
			"serve":      {Flags: map[string]complete.Predictor{"addr": predict.Nothing}},
			"assist":     {},
		},
		Flags: map[string]complete.Predictor{
			"holdings":  predict.Files("*"),
			"portfolio": predict.Nothing,
			"currency":  predict.Nothing,
			"json-rows": predict.Nothing,
		},
	}
	completer.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
