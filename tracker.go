package budget

import "fmt"

// Tracker binds a Ledger to the file it is persisted in.
//
// Every change is saved immediately: the file always reflects the ledger
// returned by Ledger.
type Tracker struct {
	path   string
	clock  Clock
	strict bool
	ledger *Ledger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock sets the clock used to date new entries. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(t *Tracker) { t.clock = c }
}

// WithStrictAmounts makes the tracker reject negative amounts.
func WithStrictAmounts() Option {
	return func(t *Tracker) { t.strict = true }
}

// NewTracker loads the ledger file at path (or starts an empty ledger if it
// does not exist) and returns a Tracker for it.
func NewTracker(path string, opts ...Option) (*Tracker, error) {
	t := &Tracker{path: path, clock: SystemClock{}}
	for _, opt := range opts {
		opt(t)
	}
	ledger, err := Load(path)
	if err != nil {
		return nil, err
	}
	t.ledger = ledger
	return t, nil
}

// Path returns the ledger file path.
func (t *Tracker) Path() string { return t.path }

// Ledger returns the current ledger. It must not be modified directly.
func (t *Tracker) Ledger() *Ledger { return t.ledger }

// AddIncome records a new income entry dated now, and saves the ledger.
func (t *Tracker) AddIncome(amount Amount, description string) (Income, error) {
	if err := t.validate(amount); err != nil {
		return Income{}, err
	}
	e := Income{
		Amount:      amount,
		Description: description,
		Date:        Timestamp(t.clock.Now()),
	}
	t.ledger.AppendIncome(e)
	if err := Save(t.path, t.ledger); err != nil {
		t.ledger.dropLastIncome()
		return Income{}, err
	}
	return e, nil
}

// AddExpense records a new expense entry dated now, and saves the ledger.
func (t *Tracker) AddExpense(amount Amount, category string) (Expense, error) {
	if err := t.validate(amount); err != nil {
		return Expense{}, err
	}
	e := Expense{
		Amount:   amount,
		Category: category,
		Date:     Timestamp(t.clock.Now()),
	}
	t.ledger.AppendExpense(e)
	if err := Save(t.path, t.ledger); err != nil {
		t.ledger.dropLastExpense()
		return Expense{}, err
	}
	return e, nil
}

func (t *Tracker) validate(amount Amount) error {
	if t.strict && amount.IsNegative() {
		return fmt.Errorf("%w: negative amount %v", ErrInput, amount)
	}
	return nil
}
