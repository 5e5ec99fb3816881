// Package cmd implements the CLI application to manage a power bill book.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/nshetty/powerbill"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "powerbill.json", "Path to the book file (JSON document)")

const EnvAPIKey = "PBM_API_KEY"

// Commands lists all subcommands. A main package registers them and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&lsCmd{},
	&addPropertyCmd{},
	&rmPropertyCmd{},
	&addCmd{},
	&editCmd{},
	&tenantCmd{},
	&rmCmd{},
	&fetchCmd{},
	&billCmd{},
	&exportCmd{},
	&importCmd{},
	&apikeyCmd{},
	&topicCmd{},
}

// OpenBook opens the book backed by the app book file.
func OpenBook() *powerbill.Book {
	return powerbill.Open(powerbill.NewFileStorage(*bookFile))
}

// resolveAPIKey retrieves the provider API key, in order of precedence:
// the command-line flag, the key stored in the book, the environment.
func resolveAPIKey(flagValue string, book *powerbill.Book) string {
	if flagValue != "" {
		return flagValue
	}
	if key := book.APIKey(); key != "" {
		return key
	}
	return os.Getenv(EnvAPIKey)
}
