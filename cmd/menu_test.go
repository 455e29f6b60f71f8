package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/budget"
)

// runMenu runs a menu on a fresh ledger at path with the scripted input.
func runMenu(t *testing.T, path, stdin string) (string, error) {
	t.Helper()
	tracker, err := budget.NewTracker(path, budget.WithClock(budget.FixedClock(testTime)))
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}
	var out bytes.Buffer
	show := func(md string) { out.WriteString(md) }
	err = NewMenu(&out, strings.NewReader(stdin), tracker, show).Run(context.Background())
	return out.String(), err
}

func TestMenu_Session(t *testing.T) {
	path := filepath.Join(t.TempDir(), budget.DefaultLedgerFile)
	stdin := strings.Join([]string{
		"1", "abc", "1000", "salary",
		"2", "200", "Food",
		"2", "$50", "Food",
		"3",
		"4",
		"5",
		"9",
		"6",
	}, "\n") + "\n"

	got, err := runMenu(t, path, stdin)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, want := range []string{
		"--- Budget Tracker ---",
		`Error: invalid input: "abc" is not a number`,
		"| Total Income     | $1,000.00 |",
		"| Remaining Budget | $750.00 |",
		"## Income vs Expenses",
		"| Food | 2 |",
		"Invalid option. Please try again.",
		"Goodbye!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("menu output does not contain %q:\n%s", want, got)
		}
	}

	l := mustLoad(t, path)
	if got := len(l.Income()); got != 1 {
		t.Errorf("saved ledger has %d income, want 1", got)
	}
	expenses := l.Expenses()
	if len(expenses) != 2 {
		t.Fatalf("saved ledger has %d expenses, want 2", len(expenses))
	}
	if want := budget.Timestamp(testTime); expenses[1].Date != want {
		t.Errorf("expense date = %q, want %q", expenses[1].Date, want)
	}
	if !expenses[1].Amount.Equal(budget.A(50)) {
		t.Errorf("expense amount = %v, want $50.00", expenses[1].Amount)
	}
}

func TestMenu_NoExpenses(t *testing.T) {
	got, err := runMenu(t, filepath.Join(t.TempDir(), "ledger.json"), "5\n6\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(got, "No expenses to show.") {
		t.Errorf("menu output does not report empty expenses:\n%s", got)
	}
}

func TestMenu_EndOfInput(t *testing.T) {
	testCases := []struct {
		name  string
		stdin string
	}{
		{"no input", ""},
		{"during selection", "3\n"},
		{"during amount", "1\n"},
		{"during description", "1\n100\n"},
		{"last line without newline", "1\n100\nbonus"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ledger.json")
			if _, err := runMenu(t, path, tc.stdin); err != nil {
				t.Errorf("Run(%q) error = %v, want a clean exit", tc.stdin, err)
			}
		})
	}

	// A final line without a line ending is still a complete answer.
	path := filepath.Join(t.TempDir(), "ledger.json")
	if _, err := runMenu(t, path, "1\n100\nbonus"); err != nil {
		t.Fatal(err)
	}
	if got := mustLoad(t, path).Income(); len(got) != 1 || got[0].Description != "bonus" {
		t.Errorf("saved income = %v, want a single bonus", got)
	}
}

func TestMenu_PersistenceFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "ledger.json")
	_, err := runMenu(t, path, "1\n100\nsalary\n6\n")
	if !errors.Is(err, budget.ErrPersistence) {
		t.Fatalf("Run() error = %v, want ErrPersistence", err)
	}
}

func TestMenu_Canceled(t *testing.T) {
	tracker, err := budget.NewTracker(filepath.Join(t.TempDir(), "ledger.json"))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err = NewMenu(&out, strings.NewReader("6\n"), tracker, func(string) {}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
