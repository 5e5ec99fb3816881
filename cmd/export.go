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

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the book to a backup file" }
func (*exportCmd) Usage() string {
	return `pbm export [-o <file>]

  Writes the whole book as a JSON document, suitable for 'pbm import'.
  Defaults to a timestamped file name, use '-o -' for stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "destination file, '-' for stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := OpenBook()

	if c.output == "-" {
		if err := book.Export(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	name := c.output
	if name == "" {
		name = powerbill.ExportFilename(time.Now())
	}
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := book.Export(out); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported book to %s\n", name)
	return subcommands.ExitSuccess
}
