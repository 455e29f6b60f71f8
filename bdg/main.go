// Command bdg is a personal budget journal: it records income and expenses
// into a JSON ledger file and reports on them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/budget/cmd"
	"github.com/etnz/budget/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Shell completion, install it with COMP_INSTALL=1 bdg.
	completion(commander).Complete(name)

	if err := cmd.LoadEnv(flag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	if err := parseArgs(flag.CommandLine, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	cmd.SetupLogging()

	if sub := flag.Arg(0); !isCommand(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// parseArgs parses the command line into flags. Without a subcommand, it
// selects the interactive menu.
func parseArgs(flags *flag.FlagSet, args []string) error {
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return nil
	}
	return flags.Parse(append(args, "menu"))
}

// isCommand reports whether name is a registered subcommand.
func isCommand(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == name
	})
	return found
}

// completion describes the command line for shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	amount := predict.Something
	topics, _ := docs.GetAllTopics()

	subFlags := map[string]map[string]complete.Predictor{
		"income":  {"amount": amount, "description": predict.Something},
		"expense": {"amount": amount, "category": predict.Something},
		"query":   {"c": predict.Nothing},
		"export":  {"db": predict.Files("*.db")},
		"advise":  {"model": predict.Set{"gemini-2.5-flash", "gemini-2.5-pro"}},
	}
	subArgs := map[string]complete.Predictor{
		"topic": predict.Set(append(topics, "*")),
		"help":  predict.Nothing,
	}

	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"file":   predict.Files("*.json"),
			"strict": predict.Nothing,
			"plain":  predict.Nothing,
			"v":      predict.Nothing,
		},
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		root.Sub[c.Name()] = &complete.Command{
			Flags: subFlags[c.Name()],
			Args:  subArgs[c.Name()],
		}
	})
	return root
}
