package budget

import "errors"

var (
	// ErrPersistence is returned when the ledger file cannot be read, decoded or written.
	ErrPersistence = errors.New("persistence error")
	// ErrInput is returned for invalid user provided values, like a non numeric amount.
	ErrInput = errors.New("invalid input")
	// ErrEmptyData is returned when a report has nothing to display.
	ErrEmptyData = errors.New("nothing to display")
)
