package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

// exitStatus maps ledger errors to the command exit status.
func exitStatus(err error) subcommands.ExitStatus {
	if errors.Is(err, budget.ErrInput) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// --- Income Command ---

type incomeCmd struct {
	amount      string
	description string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income entry" }
func (*incomeCmd) Usage() string {
	return `bdg income -amount <amount> [-description <text>]

  Records an income entry, dated now, and saves the ledger.
`
}
func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount received (e.g. 1000, 12.50)")
	f.StringVar(&c.description, "description", "", "What the income is (e.g. salary)")
}
func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := budget.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	tracker, err := OpenTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	e, err := tracker.AddIncome(amount, c.description)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording income: %v\n", err)
		return exitStatus(err)
	}
	fmt.Fprintf(output, "Recorded income of %v (%s) in %s\n", e.Amount, e.Description, tracker.Path())
	return subcommands.ExitSuccess
}

// --- Expense Command ---

type expenseCmd struct {
	amount   string
	category string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense entry" }
func (*expenseCmd) Usage() string {
	return `bdg expense -amount <amount> -category <category>

  Records an expense entry, dated now, and saves the ledger.
  Categories are free text, compared exactly.
`
}
func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount spent (e.g. 200, 12.50)")
	f.StringVar(&c.category, "category", "", "Expense category (e.g. Food, Rent)")
}
func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := budget.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	tracker, err := OpenTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	e, err := tracker.AddExpense(amount, c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording expense: %v\n", err)
		return exitStatus(err)
	}
	fmt.Fprintf(output, "Recorded expense of %v (%s) in %s\n", e.Amount, e.Category, tracker.Path())
	return subcommands.ExitSuccess
}
