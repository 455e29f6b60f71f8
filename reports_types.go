package budget

import "fmt"

// Chart is a dataset ready to be plotted: one value per label, in display order.
type Chart[V any] struct {
	Title  string
	XLabel string
	YLabel string
	Labels []string
	Values []V
}

// Len returns the number of (label, value) pairs.
func (c Chart[V]) Len() int { return len(c.Labels) }

// IncomeVsExpenses returns the dataset of the "Income vs Expenses" pie chart.
//
// It never fails: an empty ledger yields a chart with two zero slices.
func (l *Ledger) IncomeVsExpenses() Chart[Amount] {
	s := l.Summary()
	return Chart[Amount]{
		Title:  "Income vs Expenses",
		Labels: []string{"Income", "Expenses"},
		Values: []Amount{s.TotalIncome, s.TotalExpenses},
	}
}

// ExpenseCategories returns the number of expense entries per category.
//
// Categories are compared exactly (case sensitive) and listed in the order
// they first appear in the ledger. It fails with ErrEmptyData if there is no
// expense at all.
func (l *Ledger) ExpenseCategories() (Chart[int], error) {
	if len(l.expenses) == 0 {
		return Chart[int]{}, fmt.Errorf("%w: no expenses to show", ErrEmptyData)
	}
	c := Chart[int]{
		Title:  "Expenses by Category",
		XLabel: "Number of Transactions",
		YLabel: "Expense Categories",
	}
	index := make(map[string]int) // category -> position in c.Labels
	for _, e := range l.expenses {
		i, exists := index[e.Category]
		if !exists {
			i = len(c.Labels)
			index[e.Category] = i
			c.Labels = append(c.Labels, e.Category)
			c.Values = append(c.Values, 0)
		}
		c.Values[i]++
	}
	return c, nil
}
