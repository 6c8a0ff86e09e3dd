package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finbook/finbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: this returns immediately unless the binary is being
	// invoked by the shell's completion machinery.
	completion().Complete("fbk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	dates := predict.Nothing
	sub := map[string]*complete.Command{
		"add-account":     {Flags: map[string]complete.Predictor{"name": predict.Nothing, "c": predict.Nothing, "category": predict.Nothing, "initial": predict.Nothing, "notes": predict.Nothing}},
		"archive-account": {Flags: map[string]complete.Predictor{"restore": predict.Nothing}},
		"accounts":        {Flags: map[string]complete.Predictor{"all": predict.Nothing, "d": dates}},
		"income":          {Flags: map[string]complete.Predictor{"a": predict.Nothing, "to": predict.Nothing, "d": dates, "category": predict.Nothing, "m": predict.Nothing}},
		"expense":         {Flags: map[string]complete.Predictor{"a": predict.Nothing, "from": predict.Nothing, "d": dates, "category": predict.Nothing, "m": predict.Nothing}},
		"transfer":        {Flags: map[string]complete.Predictor{"a": predict.Nothing, "from": predict.Nothing, "to": predict.Nothing, "d": dates, "m": predict.Nothing}},
		"tx":              {Flags: map[string]complete.Predictor{"p": predict.Set{"day", "week", "month", "quarter", "year"}, "s": dates, "d": dates, "account": predict.Nothing}},
		"record-balance":  {Flags: map[string]complete.Predictor{"account": predict.Nothing, "a": predict.Nothing, "d": dates, "verified": predict.Nothing}},
		"balance":         {Flags: map[string]complete.Predictor{"d": dates}},
		"add-asset":       {Flags: map[string]complete.Predictor{"name": predict.Nothing, "account": predict.Nothing, "kind": predict.Set{"stock", "bond", "crypto", "realEstate", "vehicle", "collectible", "other"}, "custom": predict.Nothing, "q": predict.Nothing, "price": predict.Nothing}},
		"add-budget":      {Flags: map[string]complete.Predictor{"name": predict.Nothing, "a": predict.Nothing, "p": predict.Set{"weekly", "monthly", "yearly"}, "categories": predict.Nothing, "s": dates, "e": dates, "once": predict.Nothing}},
		"budgets":         {Flags: map[string]complete.Predictor{"d": dates}},
		"networth":        {Flags: map[string]complete.Predictor{"d": dates}},
		"history":         {Flags: map[string]complete.Predictor{"s": dates, "e": dates, "i": predict.Set{"day", "week", "month", "quarter", "year"}}},
		"summary":         {Flags: map[string]complete.Predictor{"d": dates}},
		"export":          {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
		"import":          {Args: predict.Files("*.json")},
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"file":  predict.Files("*.json"),
			"rates": predict.Files("*.json"),
		},
	}
}
