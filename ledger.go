package budget

import (
	"iter"
	"slices"
)

// Ledger holds the income and expense entries of a budget.
//
// In a Ledger entries are kept in insertion order, which is the only order
// they have. An entry is only identified by its position.
type Ledger struct {
	income   []Income
	expenses []Expense
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		income:   make([]Income, 0),
		expenses: make([]Expense, 0),
	}
}

// AppendIncome appends income entries at the end of the ledger.
func (l *Ledger) AppendIncome(entries ...Income) {
	l.income = append(l.income, entries...)
}

// AppendExpense appends expense entries at the end of the ledger.
func (l *Ledger) AppendExpense(entries ...Expense) {
	l.expenses = append(l.expenses, entries...)
}

// Income returns a copy of the income entries, in insertion order.
func (l *Ledger) Income() []Income { return slices.Clone(l.income) }

// Expenses returns a copy of the expense entries, in insertion order.
func (l *Ledger) Expenses() []Expense { return slices.Clone(l.expenses) }

// Len returns the total number of entries in the ledger.
func (l *Ledger) Len() int { return len(l.income) + len(l.expenses) }

// AllIncome iterates over income entries, in insertion order.
func (l *Ledger) AllIncome() iter.Seq2[int, Income] { return slices.All(l.income) }

// AllExpenses iterates over expense entries, in insertion order.
func (l *Ledger) AllExpenses() iter.Seq2[int, Expense] { return slices.All(l.expenses) }

// dropLastIncome undoes the last AppendIncome of a single entry.
func (l *Ledger) dropLastIncome() {
	if n := len(l.income); n > 0 {
		l.income = l.income[:n-1]
	}
}

// dropLastExpense undoes the last AppendExpense of a single entry.
func (l *Ledger) dropLastExpense() {
	if n := len(l.expenses); n > 0 {
		l.expenses = l.expenses[:n-1]
	}
}
