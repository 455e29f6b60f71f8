package main

import (
	"flag"
	"io"
	"slices"
	"testing"
)

func TestParseArgs(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		wantArgs []string
		wantFile string
	}{
		{"no arguments", nil, []string{"menu"}, "budget_data.json"},
		{"global flags only", []string{"-file", "home.json"}, []string{"menu"}, "home.json"},
		{"subcommand", []string{"summary"}, []string{"summary"}, "budget_data.json"},
		{"flags and subcommand", []string{"-file", "x.json", "income", "-amount", "10"}, []string{"income", "-amount", "10"}, "x.json"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			flags := flag.NewFlagSet("bdg", flag.ContinueOnError)
			file := flags.String("file", "budget_data.json", "")
			if err := parseArgs(flags, tc.args); err != nil {
				t.Fatalf("parseArgs(%v) error = %v", tc.args, err)
			}
			if !slices.Equal(flags.Args(), tc.wantArgs) {
				t.Errorf("args = %v, want %v", flags.Args(), tc.wantArgs)
			}
			if *file != tc.wantFile {
				t.Errorf("file = %q, want %q", *file, tc.wantFile)
			}
		})
	}
}

func TestParseArgs_Invalid(t *testing.T) {
	flags := flag.NewFlagSet("bdg", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Bool("strict", false, "")
	if err := parseArgs(flags, []string{"-unknown"}); err == nil {
		t.Error("parseArgs(-unknown) succeeded, want an error")
	}
	if err := parseArgs(flags, []string{"-strict=maybe"}); err == nil {
		t.Error("parseArgs(-strict=maybe) succeeded, want an error")
	}
}
