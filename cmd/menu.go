package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

const menuText = `
--- Budget Tracker ---
1. Add Income
2. Add Expense
3. View Summary
4. Visualize Income vs Expenses
5. Visualize Expense Categories
6. Exit
`

// Menu is the interactive budget tracker: a loop of menu selections, each
// running one ledger operation to completion.
type Menu struct {
	w       io.Writer
	r       *bufio.Reader
	tracker *budget.Tracker
	show    func(md string)
}

// NewMenu creates a menu reading user input from r and writing prompts to w.
// Reports are passed to show.
func NewMenu(w io.Writer, r io.Reader, tracker *budget.Tracker, show func(md string)) *Menu {
	return &Menu{
		w:       w,
		r:       bufio.NewReader(r),
		tracker: tracker,
		show:    show,
	}
}

// errEndOfInput stops the menu when the input is exhausted.
var errEndOfInput = errors.New("end of input")

// Run runs the menu until "Exit" is selected or the input ends.
//
// Invalid selections and amounts are reported and asked again. Any other
// error, like a failure to save the ledger, stops the menu and is returned.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(m.w, menuText)
		choice, err := m.readLine("Select an option: ")
		if err != nil {
			return m.stop(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.addIncome()
		case "2":
			err = m.addExpense()
		case "3":
			m.show(renderer.Summary(m.tracker.Ledger().Summary()))
		case "4":
			m.show(renderer.IncomeVsExpenses(m.tracker.Ledger().IncomeVsExpenses()))
		case "5":
			err = m.expenseCategories()
		case "6":
			fmt.Fprintln(m.w, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.w, "Invalid option. Please try again.")
		}
		if err != nil {
			return m.stop(err)
		}
	}
}

// stop turns the end of input into a clean exit.
func (m *Menu) stop(err error) error {
	if errors.Is(err, errEndOfInput) {
		fmt.Fprintln(m.w)
		return nil
	}
	return err
}

func (m *Menu) addIncome() error {
	amount, err := m.readAmount("Enter income amount: $")
	if err != nil {
		return err
	}
	description, err := m.readLine("Enter income description: ")
	if err != nil {
		return err
	}
	_, err = m.tracker.AddIncome(amount, description)
	return m.report(err)
}

func (m *Menu) addExpense() error {
	amount, err := m.readAmount("Enter expense amount: $")
	if err != nil {
		return err
	}
	category, err := m.readLine("Enter expense category (e.g., Food, Rent): ")
	if err != nil {
		return err
	}
	_, err = m.tracker.AddExpense(amount, category)
	return m.report(err)
}

func (m *Menu) expenseCategories() error {
	chart, err := m.tracker.Ledger().ExpenseCategories()
	if errors.Is(err, budget.ErrEmptyData) {
		fmt.Fprintln(m.w, "No expenses to show.")
		return nil
	}
	if err != nil {
		return err
	}
	m.show(renderer.ExpenseCategories(chart))
	return nil
}

// report reports input errors to the user, and returns all the others.
func (m *Menu) report(err error) error {
	if errors.Is(err, budget.ErrInput) {
		fmt.Fprintf(m.w, "Error: %v\n", err)
		return nil
	}
	return err
}

// readAmount prompts until a valid amount is entered.
func (m *Menu) readAmount(prompt string) (budget.Amount, error) {
	for {
		line, err := m.readLine(prompt)
		if err != nil {
			return budget.Amount{}, err
		}
		amount, err := budget.ParseAmount(line)
		if err == nil {
			return amount, nil
		}
		fmt.Fprintf(m.w, "Error: %v\n", err)
	}
}

// readLine prompts and reads a line of input, without its line ending.
func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.w, prompt)
	line, err := m.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", errEndOfInput
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "start the interactive budget tracker (default)" }
func (*menuCmd) Usage() string {
	return `bdg menu

  Starts the interactive budget tracker: add income and expenses, view the
  summary and the charts. This is also what bdg does without a subcommand.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (*menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, err := OpenTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	if err := NewMenu(output, input, tracker, printMarkdown).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
