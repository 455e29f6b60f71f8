package budget

// Income is a single income entry of the ledger.
type Income struct {
	Amount      Amount `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Expense is a single expense entry of the ledger.
type Expense struct {
	Amount   Amount `json:"amount"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

// MarshalJSON writes the income fields in their canonical order.
func (e Income) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", e.Amount)
	w.Append("description", e.Description)
	w.Append("date", e.Date)
	return w.MarshalJSON()
}

// MarshalJSON writes the expense fields in their canonical order.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", e.Amount)
	w.Append("category", e.Category)
	w.Append("date", e.Date)
	return w.MarshalJSON()
}
