// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the extern-names CLI, which lists the
// functions a C header declares extern, one per line on stdout.
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd scans the configured header and prints the extern names.
var rootCmd = &cobra.Command{
	Use:   "extern-names",
	Short: "List the functions a C header declares extern",
	Long: `extern-names scans a C header line by line and prints the name of every
function declared with a leading "extern", one per line, in header order.

Only lines that begin with "extern" are considered. Declarations that span
several lines, sit inside preprocessor conditionals or comments are not
interpreted; the scan is textual.

The header defaults to include/lightning.h.in and may be set with --input,
the EXTERN_NAMES_INPUT environment variable, or "input:" in a config file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runExtract,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./extern-names.yaml or ~/.config/extern-names/extern-names.yaml)")
}

// reportError prints err as a red diagnostic line.
func reportError(w io.Writer, err error) {
	red := color.New(color.FgRed)
	red.Fprintf(w, "error: %v\n", err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
