package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// RunExtension attempts to find and execute an external bdg-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The global flags are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "bdg-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("extension-not-found name=%q err=%q", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = input
	cmd.Stdout = output
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+*ledgerFile,
		EnvStrict+"="+strconv.FormatBool(*strictAmounts),
		EnvPlain+"="+strconv.FormatBool(*plainOutput),
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	log.Printf("run-extension name=%q path=%q", name, lp)
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
