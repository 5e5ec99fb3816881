package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCmd struct {
	property string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add one or more UKSC meters to a property" }
func (*addCmd) Usage() string {
	return `pbm add -p <property-id> <numbers>...

  Adds UKSC meters to a property. Each argument can hold several
  numbers separated by commas, so pasting a whole list works:

      pbm add -p <id> 1001 "1002,1003"

  Each meter gets a default label "UKSC <number>" and an empty tenant.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "id of the property receiving the meters")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <property-id> is required")
		return subcommands.ExitUsageError
	}
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected at least one UKSC number")
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	added, err := book.AddMeters(c.property, f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if len(added) == 0 {
		fmt.Println("No valid UKSC numbers given, nothing added.")
		return subcommands.ExitSuccess
	}
	for _, m := range added {
		fmt.Printf("Added meter %s (%s)\n", m.Number, m.ID)
	}
	return subcommands.ExitSuccess
}
