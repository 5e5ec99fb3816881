package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nshetty/powerbill"
)

type editCmd struct {
	property string
	label    string
	number   string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a meter's label or UKSC number" }
func (*editCmd) Usage() string {
	return `pbm edit -p <property-id> [-label <label>] [-number <number>] <meter-id>

  Changes the given fields of a meter, leaving the rest untouched.
  Use the 'tenant' command to change tenant details.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "id of the property holding the meter")
	f.StringVar(&c.label, "label", "", "new label for the meter")
	f.StringVar(&c.number, "number", "", "new UKSC number for the meter")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <property-id> is required")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one meter id")
		return subcommands.ExitUsageError
	}

	var u powerbill.MeterUpdate
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "label":
			u.Label = &c.label
		case "number":
			u.Number = &c.number
		}
	})
	if u.Label == nil && u.Number == nil {
		fmt.Fprintln(os.Stderr, "Error: nothing to change, pass -label or -number")
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	m, err := book.UpdateMeter(c.property, f.Arg(0), u)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated meter %s: %s (%s)\n", m.ID, m.Label, m.Number)
	return subcommands.ExitSuccess
}
