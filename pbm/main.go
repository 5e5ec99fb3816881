// pbm is the power bill manager command line tool.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/nshetty/powerbill/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{}
	}
	sub["import"].Args = predict.Files("*.json")
	sub["export"].Flags = map[string]complete.Predictor{"o": predict.Files("*.json")}

	// Provides shell completion when invoked through a completion hook,
	// and is a no-op otherwise.
	cmp := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"book-file": predict.Files("*.json"),
		},
	}
	cmp.Complete("pbm")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
