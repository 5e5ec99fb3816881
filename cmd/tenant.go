package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nshetty/powerbill"
)

type tenantCmd struct {
	property string
	name     string
	address  string
	phone    string
}

func (*tenantCmd) Name() string     { return "tenant" }
func (*tenantCmd) Synopsis() string { return "set the tenant details of a meter" }
func (*tenantCmd) Usage() string {
	return `pbm tenant -p <property-id> [-name <name>] [-address <address>] [-phone <phone>] <meter-id>

  Replaces the tenant record of a meter with the given details. Fields
  not passed are cleared, so always give the full tenant. Run with no
  detail flags to mark the meter vacant.
`
}

func (c *tenantCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "id of the property holding the meter")
	f.StringVar(&c.name, "name", "", "tenant name")
	f.StringVar(&c.address, "address", "", "tenant address")
	f.StringVar(&c.phone, "phone", "", "tenant phone number")
}

func (c *tenantCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <property-id> is required")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one meter id")
		return subcommands.ExitUsageError
	}

	tenant := powerbill.Tenant{Name: c.name, Address: c.address, Phone: c.phone}
	book := OpenBook()
	m, err := book.UpdateMeter(c.property, f.Arg(0), powerbill.MeterUpdate{Tenant: &tenant})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if tenant.Name == "" {
		fmt.Printf("Meter %s (%s) marked vacant\n", m.Label, m.Number)
	} else {
		fmt.Printf("Meter %s (%s) now rented to %s\n", m.Label, m.Number, tenant.Name)
	}
	return subcommands.ExitSuccess
}
