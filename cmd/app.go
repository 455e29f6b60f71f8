// Package cmd implements the CLI application to manage a budget.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/budget"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&menuCmd{}, "ledger")
	c.Register(&incomeCmd{}, "ledger")
	c.Register(&expenseCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&pieCmd{}, "reports")
	c.Register(&categoriesCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&exportCmd{}, "tools")
	c.Register(&adviseCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("file", budget.DefaultLedgerFile, "Path to the ledger file (JSON format)")
var strictAmounts = flag.Bool("strict", false, "Reject negative amounts")
var plainOutput = flag.Bool("plain", false, "Print reports as raw markdown, even on a terminal")

// Verbose enables the log output.
var Verbose = flag.Bool("v", false, "Print diagnostic logs on stderr")

// Standard streams, replaced in tests.
var (
	output io.Writer    = os.Stdout
	input  io.Reader    = os.Stdin
	clock  budget.Clock = budget.SystemClock{}
)

// SetupLogging directs the log output to stderr in verbose mode, and discards it otherwise.
func SetupLogging() {
	if !*Verbose {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ltime)
}

// OpenTracker opens the app ledger file for changes.
func OpenTracker() (*budget.Tracker, error) {
	opts := []budget.Option{budget.WithClock(clock)}
	if *strictAmounts {
		opts = append(opts, budget.WithStrictAmounts())
	}
	return budget.NewTracker(*ledgerFile, opts...)
}

// DecodeLedger loads the app ledger file, read only.
func DecodeLedger() (*budget.Ledger, error) {
	return budget.Load(*ledgerFile)
}

// printMarkdown prints md to the output, styled if the output is a terminal.
func printMarkdown(md string) {
	if *plainOutput || !isTerminal(output) {
		fmt.Fprint(output, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.Printf("markdown-renderer-error err=%q", err)
		fmt.Fprint(output, md)
		return
	}
	styled, err := r.Render(md)
	if err != nil {
		log.Printf("markdown-render-error err=%q", err)
		fmt.Fprint(output, md)
		return
	}
	fmt.Fprint(output, styled)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
