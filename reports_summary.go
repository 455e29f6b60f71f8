package budget

// Summary holds the totals of a ledger.
type Summary struct {
	TotalIncome   Amount
	TotalExpenses Amount
	Remaining     Amount // TotalIncome - TotalExpenses
}

// Summary computes the totals of the ledger. An empty ledger yields zeros.
func (l *Ledger) Summary() Summary {
	var s Summary
	for _, e := range l.income {
		s.TotalIncome = s.TotalIncome.Add(e.Amount)
	}
	for _, e := range l.expenses {
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
	}
	s.Remaining = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}
