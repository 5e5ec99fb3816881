package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmPropertyCmd struct{}

func (*rmPropertyCmd) Name() string     { return "rm-property" }
func (*rmPropertyCmd) Synopsis() string { return "delete a property and all its meters" }
func (*rmPropertyCmd) Usage() string {
	return `pbm rm-property <property-id>

  Deletes a property. All UKSC meters of the property are deleted with
  it. Deleting an id that does not exist is not an error.
`
}

func (c *rmPropertyCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmPropertyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one property id")
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	book.DeleteProperty(f.Arg(0))
	fmt.Printf("Deleted property %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
