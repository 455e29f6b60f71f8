package renderer

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/budget"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var fixGoldens = flag.Bool("fix-goldens", false, "if true, update failing golden .md files with the received output")

func TestFixGoldensIsOff(t *testing.T) {
	if *fixGoldens {
		t.Fatal("-fix-goldens is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// scenario returns the ledger of 1000 salary, and two food expenses.
func scenario() *budget.Ledger {
	l := budget.NewLedger()
	l.AppendIncome(budget.Income{Amount: budget.A(1000), Description: "salary"})
	l.AppendExpense(
		budget.Expense{Amount: budget.A(200), Category: "Food"},
		budget.Expense{Amount: budget.A(50), Category: "Food"},
	)
	return l
}

func TestRender(t *testing.T) {
	categories := budget.NewLedger()
	categories.AppendExpense(
		budget.Expense{Amount: budget.A(30), Category: "Rent"},
		budget.Expense{Amount: budget.A(70), Category: "Rent"},
		budget.Expense{Amount: budget.A(10), Category: "Food"},
		budget.Expense{Amount: budget.A(45), Category: "Bills | Utilities"},
	)
	histogram, err := categories.ExpenseCategories()
	if err != nil {
		t.Fatalf("ExpenseCategories() error = %v", err)
	}

	testCases := []struct {
		name       string
		goldenFile string
		got        string
	}{
		{"summary", "testdata/summary.md", Summary(scenario().Summary())},
		{"empty summary", "testdata/summary_empty.md", Summary(budget.NewLedger().Summary())},
		{"pie", "testdata/pie.md", IncomeVsExpenses(scenario().IncomeVsExpenses())},
		{"empty pie", "testdata/pie_empty.md", IncomeVsExpenses(budget.NewLedger().IncomeVsExpenses())},
		{"categories", "testdata/categories.md", ExpenseCategories(histogram)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			want, err := os.ReadFile(tc.goldenFile)
			if err != nil {
				t.Fatalf("failed to read golden file %s: %v", tc.goldenFile, err)
			}
			if tc.got == string(want) {
				return
			}
			if *fixGoldens {
				if err := os.WriteFile(filepath.FromSlash(tc.goldenFile), []byte(tc.got), 0644); err != nil {
					t.Fatalf("failed to update golden file %s: %v", tc.goldenFile, err)
				}
				t.Logf("updated golden file %s", tc.goldenFile)
				return
			}
			t.Errorf("mismatch for %s\n--- got ---\n%s\n--- want ---\n%s", tc.goldenFile, tc.got, want)
		})
	}
}

// TestRenderedTables checks that every report is a valid markdown table with
// one row per dataset entry.
func TestRenderedTables(t *testing.T) {
	histogram, err := scenario().ExpenseCategories()
	if err != nil {
		t.Fatalf("ExpenseCategories() error = %v", err)
	}

	testCases := []struct {
		name     string
		markdown string
		wantRows int // body rows, header excluded
	}{
		{"summary", Summary(scenario().Summary()), 3},
		{"pie", IncomeVsExpenses(scenario().IncomeVsExpenses()), 2},
		{"categories", ExpenseCategories(histogram), 1},
	}

	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			source := []byte(tc.markdown)
			root := parser.Parse(text.NewReader(source))

			tables, rows := 0, 0
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				switch n.(type) {
				case *east.Table:
					tables++
				case *east.TableRow:
					rows++
				}
				return ast.WalkContinue, nil
			})
			if tables != 1 {
				t.Errorf("found %d tables, want 1 in:\n%s", tables, tc.markdown)
			}
			if rows != tc.wantRows {
				t.Errorf("found %d rows, want %d in:\n%s", rows, tc.wantRows, tc.markdown)
			}
		})
	}
}

func TestBar(t *testing.T) {
	testCases := []struct {
		ratio float64
		want  int
	}{
		{-1, 0},
		{0, 0},
		{0.5, 15},
		{1, 30},
		{2, 30},
	}
	for _, tc := range testCases {
		if got := len([]rune(bar(tc.ratio))); got != tc.want {
			t.Errorf("bar(%v) has %d blocks, want %d", tc.ratio, got, tc.want)
		}
	}
}

func TestCell(t *testing.T) {
	testCases := map[string]string{
		"Food":       "Food",
		"a|b":        `a\|b`,
		"two\nlines": "two lines",
		"":           "(none)",
		"   ":        "(none)",
	}
	for in, want := range testCases {
		if got := cell(in); got != want {
			t.Errorf("cell(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIncomeVsExpenses_Negative(t *testing.T) {
	testCases := []struct {
		name     string
		income   float64
		expenses float64
		wants    []string
	}{
		{
			name:     "refund larger than expenses",
			income:   100,
			expenses: -50,
			wants:    []string{"| Income | $100.00 | n/a |  |", "| Expenses | -$50.00 | n/a |  |"},
		},
		{
			name:     "negative income",
			income:   -100,
			expenses: 300,
			wants:    []string{"| Income | -$100.00 | n/a |  |", "| Expenses | $300.00 | n/a |  |"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := budget.NewLedger()
			l.AppendIncome(budget.Income{Amount: budget.A(tc.income)})
			l.AppendExpense(budget.Expense{Amount: budget.A(tc.expenses)})
			got := IncomeVsExpenses(l.IncomeVsExpenses())
			for _, want := range tc.wants {
				if !strings.Contains(got, want) {
					t.Errorf("pie does not contain %q:\n%s", want, got)
				}
			}
		})
	}
}
