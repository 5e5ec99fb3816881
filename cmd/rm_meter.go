package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	property string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a meter from a property" }
func (*rmCmd) Usage() string {
	return `pbm rm -p <property-id> <meter-id>

  Removes a meter. Removing an id that does not exist is not an error.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "id of the property holding the meter")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <property-id> is required")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one meter id")
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	book.RemoveMeter(c.property, f.Arg(0))
	fmt.Printf("Removed meter %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
