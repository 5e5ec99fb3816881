package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nshetty/powerbill/renderer"
)

type lsCmd struct {
	propertyID string
	query      string
}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list properties, or the meters of one property" }
func (*lsCmd) Usage() string {
	return `pbm ls [-p <property-id>] [-q <query>]

  Without flags, lists all properties. With -p, lists the meters of that
  property. With -q, searches meters across all properties by UKSC
  number, label or tenant name.
`
}

func (c *lsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.propertyID, "p", "", "Property to list the meters of.")
	f.StringVar(&c.query, "q", "", "Search meters by UKSC number, label or tenant name.")
}

func (c *lsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := OpenBook()

	if c.query != "" {
		for _, m := range book.FindMeters(c.query) {
			fmt.Printf("%s  %-12s %s\n", m.ID, m.Number, m.Label)
		}
		return subcommands.ExitSuccess
	}

	if c.propertyID != "" {
		p, ok := book.Property(c.propertyID)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: property %q not found\n", c.propertyID)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.Meters(p))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Properties(book.Properties()))
	return subcommands.ExitSuccess
}
