package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type pieCmd struct{}

func (*pieCmd) Name() string     { return "pie" }
func (*pieCmd) Synopsis() string { return "chart income vs expenses" }
func (*pieCmd) Usage() string {
	return `bdg pie

  Displays the share of income and expenses in the total money flow.
`
}

func (*pieCmd) SetFlags(f *flag.FlagSet) {}

func (*pieCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.IncomeVsExpenses(ledger.IncomeVsExpenses()))
	return subcommands.ExitSuccess
}

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "chart the number of expenses per category" }
func (*categoriesCmd) Usage() string {
	return `bdg categories

  Displays the number of transactions for each expense category, in the order
  categories first appear in the ledger.
`
}

func (*categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (*categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	chart, err := ledger.ExpenseCategories()
	if errors.Is(err, budget.ErrEmptyData) {
		fmt.Fprintln(output, "No expenses to show.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ExpenseCategories(chart))
	return subcommands.ExitSuccess
}
