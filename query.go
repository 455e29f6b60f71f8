package budget

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the ledger document, as it is
// persisted, e.g. `$.expenses[?(@.category=="Food")].amount`.
//
// The result is made of plain JSON values: map[string]any, []any, string,
// float64 or bool. An invalid expression fails with ErrInput.
func (l *Ledger) Query(path string) (any, error) {
	var b bytes.Buffer
	if err := EncodeLedger(&b, l); err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(b.Bytes(), &jobj); err != nil {
		return nil, fmt.Errorf("cannot read back ledger document: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot evaluate %q: %w", ErrInput, path, err)
	}
	return jval, nil
}
