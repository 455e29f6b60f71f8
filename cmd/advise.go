package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/budget/advisor"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// adviseCmd is the subcommand for the budget advisor.
type adviseCmd struct {
	model string
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "chat with an AI advisor about your budget" }
func (*adviseCmd) Usage() string {
	return `bdg advise [-model <name>] [question...]

  Starts a chat with a Gemini model that knows your budget summary and
  expense categories. Requires the GEMINI_API_KEY environment variable.
  The optional question is asked first. Type 'bye' to exit.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", advisor.DefaultModel, "Gemini model name")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := advisor.New(c.model, ledger)
	if err := a.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the advisor:", err)
		return subcommands.ExitFailure
	}

	initialPrompt := strings.Join(f.Args(), " ")
	if err := a.Run(ctx, output, input, printMarkdown, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
