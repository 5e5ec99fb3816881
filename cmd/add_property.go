package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nshetty/powerbill"
)

type addPropertyCmd struct {
	name string
	typ  string
}

func (*addPropertyCmd) Name() string     { return "add-property" }
func (*addPropertyCmd) Synopsis() string { return "create a new property" }
func (*addPropertyCmd) Usage() string {
	return `pbm add-property -name <name> [-type home|apartment]

  Creates a new property grouping UKSC meters.

Usage Examples:
$ pbm add-property -name "Lake House" -type home

`
}

func (c *addPropertyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the property.")
	f.StringVar(&c.typ, "type", "home", "Type of the property (home, apartment).")
}

func (c *addPropertyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := powerbill.ParsePropertyType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	p, err := book.AddProperty(c.name, typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Created %s property %q with id %s\n", p.Type, p.Name, p.ID)
	return subcommands.ExitSuccess
}
