package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvLedgerFile = "BUDGET_FILE"
	EnvStrict     = "BUDGET_STRICT"
	EnvPlain      = "BUDGET_PLAIN"
	EnvVerbose    = "BUDGET_VERBOSE"
)

// envFlags maps global flags to the environment variable holding their default value.
var envFlags = map[string]string{
	"file":   EnvLedgerFile,
	"strict": EnvStrict,
	"plain":  EnvPlain,
	"v":      EnvVerbose,
}

// LoadEnv loads the dotenv files (".env" by default) if they exist, then uses
// the environment to set the value of the global flags registered in flags.
//
// It must be called before flags are parsed, so that the command line always wins.
// Variables already set in the environment are never overridden by a dotenv file.
func LoadEnv(flags *flag.FlagSet, dotenv ...string) error {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, filename := range dotenv {
		err := godotenv.Load(filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("cannot load %q: %w", filename, err)
		}
	}

	for name, env := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || flags.Lookup(name) == nil {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("invalid value %q for %s: %w", value, env, err)
		}
	}
	return nil
}
