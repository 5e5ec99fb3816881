package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/nshetty/powerbill"
)

type fetchCmd struct {
	property string
	apikey   string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch the latest bill for a meter" }
func (*fetchCmd) Usage() string {
	return `pbm fetch -p <property-id> [-apikey <key>] <meter-id>

  Queries the provider for the latest bill of the meter's UKSC number
  and stores it as the meter's last known bill. The API key comes from
  the -apikey flag, the key stored in the book, or $` + EnvAPIKey + `.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "id of the property holding the meter")
	f.StringVar(&c.apikey, "apikey", "", "provider API key, overrides the stored one")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	source := &powerbill.SimulatedSource{
		APIKey: resolveAPIKey(c.apikey, book),
		Delay:  500 * time.Millisecond,
	}
	snap, err := source.Fetch(ctx, m.Number)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := book.SetSnapshot(c.property, m.ID, snap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Fetched bill for %s: %s due %s (%s)\n", m.Number, snap.AmountMoney(), snap.DueDate, snap.Status)
	return subcommands.ExitSuccess
}
