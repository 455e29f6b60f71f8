package budget

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// testTime is the instant used by the fixed clock of test trackers.
var testTime = time.Date(2025, time.January, 10, 9, 30, 0, 123456000, time.UTC)

// amountComparer makes cmp compare amounts by value.
var amountComparer = cmp.Comparer(func(a, b Amount) bool { return a.Equal(b) })

// newTestTracker creates a tracker on a fresh file in a temporary folder.
func newTestTracker(t *testing.T, opts ...Option) *Tracker {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultLedgerFile)
	tr, err := NewTracker(path, append([]Option{WithClock(FixedClock(testTime))}, opts...)...)
	if err != nil {
		t.Fatalf("NewTracker(%q) error = %v", path, err)
	}
	return tr
}

// mustAddIncome adds an income or fails the test.
func mustAddIncome(t *testing.T, tr *Tracker, amount float64, description string) {
	t.Helper()
	if _, err := tr.AddIncome(A(amount), description); err != nil {
		t.Fatalf("AddIncome(%v, %q) error = %v", amount, description, err)
	}
}

// mustAddExpense adds an expense or fails the test.
func mustAddExpense(t *testing.T, tr *Tracker, amount float64, category string) {
	t.Helper()
	if _, err := tr.AddExpense(A(amount), category); err != nil {
		t.Fatalf("AddExpense(%v, %q) error = %v", amount, category, err)
	}
}
