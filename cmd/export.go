package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget/export"
	"github.com/google/subcommands"
)

type exportCmd struct {
	db string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "copy the ledger into a SQLite database" }
func (*exportCmd) Usage() string {
	return `bdg export [-db <file>]

  Writes all the ledger entries into the "income" and "expenses" tables of a
  SQLite database, replacing their previous content.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.db, "db", "budget.db", "Path to the SQLite database")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	if err := export.SQLite(ctx, c.db, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", c.db, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(output, "Exported %d entries to %s\n", ledger.Len(), c.db)
	return subcommands.ExitSuccess
}
