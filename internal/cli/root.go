// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the docscan command line tool: offline sensitivity
// checks and masking of local files or standard input.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string

	logger *logger.Logger
}

// NewRootCommand creates the docscan root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "docscan",
		Short: "Find and mask sensitive data in documents",
		Long: `docscan applies the go-doc-keeper sensitivity rules to local files.

Social security numbers, card numbers, ID numbers, amounts above $1,000 and
sensitive keywords are detected. Input is read from the named files or from
standard input when no file (or "-") is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			opts.logger = logger.NewConsoleLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (text|json|yaml)")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewMaskCommand(opts))

	return cmd
}
