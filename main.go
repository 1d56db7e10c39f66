// survey-gen generates survey localization files and section wiring from a
// survey definition spreadsheet.
//
// Usage:
//
//	survey-gen <subcommand> [flags] [args]
//
// Run "survey-gen" with no arguments for a list of subcommands.
package main

import (
	"fmt"
	"os"
)

var subcommands = map[string]func([]string) error{
	"libelles": runLibelles,
	"sections": runSections,
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	name := os.Args[1]
	if name == "-h" || name == "--help" || name == "help" {
		printUsage()
		return
	}

	run, ok := subcommands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: survey-gen <subcommand> [flags] [args]

Subcommands:
  libelles   Generate per-language section locale files from the workbook
  sections   Generate the sections.ts aggregator module

Run "survey-gen <subcommand> -h" for subcommand-specific flags.`)
}
