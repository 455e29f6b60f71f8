package budget

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// jledger is the persisted form of a Ledger.
type jledger struct {
	Income   []Income  `json:"income"`
	Expenses []Expense `json:"expenses"`
}

// DecodeLedger decodes a ledger document from r.
//
// The document must be a single JSON object with the "income" and "expenses"
// arrays; unknown fields are rejected. Missing or null arrays are read as empty.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var j *jledger
	if err := dec.Decode(&j); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty ledger document")
		}
		return nil, fmt.Errorf("invalid ledger document: %w", err)
	}
	if j == nil {
		return nil, fmt.Errorf("invalid ledger document: null")
	}
	// Only whitespace is allowed after the object.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid ledger document: unexpected data after the top-level object")
	}

	ledger := NewLedger()
	ledger.AppendIncome(j.Income...)
	ledger.AppendExpense(j.Expenses...)
	return ledger, nil
}

// EncodeLedger writes the ledger document into w, as indented JSON.
func EncodeLedger(w io.Writer, l *Ledger) error {
	j := jledger{Income: l.income, Expenses: l.expenses}
	// never persist null arrays.
	if j.Income == nil {
		j.Income = []Income{}
	}
	if j.Expenses == nil {
		j.Expenses = []Expense{}
	}

	data, err := json.Marshal(j)
	if err != nil {
		return fmt.Errorf("cannot marshal ledger: %w", err)
	}
	var b bytes.Buffer
	if err := json.Indent(&b, data, "", "  "); err != nil {
		return fmt.Errorf("cannot indent ledger: %w", err)
	}
	b.WriteByte('\n')
	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write ledger: %w", err)
	}
	return nil
}
