// SPDX-License-Identifier: Apache-2.0

// Command epifield drives the intake-form extraction pipeline: it loads
// form text exports, runs the field-extraction engine over them, and
// writes the aggregated record set for the surveillance dashboard.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "epifield",
		Short:         "Extract structured surveillance records from clinical intake forms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newExtractCmd(), newMCPCmd())
	return root
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
