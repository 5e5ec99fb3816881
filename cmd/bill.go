package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nshetty/powerbill/renderer"
)

type billCmd struct {
	property string
}

func (*billCmd) Name() string     { return "bill" }
func (*billCmd) Synopsis() string { return "show the last fetched bill of a meter" }
func (*billCmd) Usage() string {
	return `pbm bill -p <property-id> <meter-id>

  Renders the meter's last known bill as a receipt. Run 'fetch' first
  if no bill has been fetched yet.
`
}

func (c *billCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "id of the property holding the meter")
}

func (c *billCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <property-id> is required")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one meter id")
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	m, ok := book.Meter(c.property, f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no meter %q in property %q\n", f.Arg(0), c.property)
		return subcommands.ExitFailure
	}
	if m.LastBill == nil {
		fmt.Fprintf(os.Stderr, "Error: no bill fetched yet for %s, run 'pbm fetch' first\n", m.Number)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Bill(m, *m.LastBill))
	return subcommands.ExitSuccess
}
