package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type apikeyCmd struct {
	set   string
	clear bool
}

func (*apikeyCmd) Name() string     { return "apikey" }
func (*apikeyCmd) Synopsis() string { return "show or store the provider API key" }
func (*apikeyCmd) Usage() string {
	return `pbm apikey [-set <key> | -clear]

  Without flags, tells whether a key is stored in the book. The stored
  key is used by 'pbm fetch' unless overridden by its -apikey flag or
  $` + EnvAPIKey + `.
`
}

func (c *apikeyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "store this key in the book")
	f.BoolVar(&c.clear, "clear", false, "remove the stored key")
}

func (c *apikeyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.set != "" && c.clear {
		fmt.Fprintln(os.Stderr, "Error: -set and -clear are mutually exclusive")
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	switch {
	case c.set != "":
		book.SetAPIKey(c.set)
		fmt.Println("API key stored")
	case c.clear:
		book.SetAPIKey("")
		fmt.Println("API key cleared")
	case book.APIKey() == "":
		fmt.Println("No API key stored")
	default:
		fmt.Println("An API key is stored")
	}
	return subcommands.ExitSuccess
}
