package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/budget"
)

// testTime is the instant returned by the clock of the test application.
var testTime = time.Date(2025, time.January, 10, 9, 30, 0, 0, time.UTC)

// setupApp points the application globals to a ledger file in a temporary
// folder, initialized with content unless it is empty, and to in-memory
// standard streams. It returns the ledger path and the output buffer.
func setupApp(t *testing.T, content, stdin string) (string, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), budget.DefaultLedgerFile)
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write ledger: %v", err)
		}
	}

	oldLedgerFile, oldStrict, oldOutput, oldInput, oldClock := ledgerFile, strictAmounts, output, input, clock
	t.Cleanup(func() {
		ledgerFile, strictAmounts, output, input, clock = oldLedgerFile, oldStrict, oldOutput, oldInput, oldClock
	})

	strict := false
	out := new(bytes.Buffer)
	ledgerFile = &path
	strictAmounts = &strict
	output = out
	input = strings.NewReader(stdin)
	clock = budget.FixedClock(testTime)
	return path, out
}

// scenarioLedger is a ledger file with a 1000 salary and two food expenses.
const scenarioLedger = `{
  "income": [{"amount": 1000, "description": "salary", "date": "2025-01-10 09:00:00"}],
  "expenses": [
    {"amount": 200, "category": "Food", "date": "2025-01-11 12:00:00"},
    {"amount": 50, "category": "Food", "date": "2025-01-12 12:00:00"}
  ]
}
`

// mustLoad loads the ledger at path or fails the test.
func mustLoad(t *testing.T, path string) *budget.Ledger {
	t.Helper()
	l, err := budget.Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", path, err)
	}
	return l
}
