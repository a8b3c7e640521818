package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/internal/sensitive"
)

// CheckResult is the verdict for one input.
type CheckResult struct {
	Source    string   `json:"source" yaml:"source"`
	Sensitive bool     `json:"sensitive" yaml:"sensitive"`
	Findings  []string `json:"findings" yaml:"findings"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Report whether inputs contain sensitive data",
		Long: `Report whether each input contains sensitive data and which rules fired.

Exits with status 1 when at least one input is sensitive.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd, args)
		},
	}
}

func runCheck(opts *RootOptions, cmd *cobra.Command, args []string) error {
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	results := make([]CheckResult, 0, len(inputs))
	anySensitive := false
	for _, in := range inputs {
		findings := sensitive.Detect(in.content)
		result := CheckResult{Source: in.source, Sensitive: len(findings) > 0, Findings: findings}
		anySensitive = anySensitive || result.Sensitive
		results = append(results, result)

		opts.logger.Debug().Str("source", in.source).Int("bytes", len(in.content)).
			Strs("findings", findings).Msg("checked")
	}

	done, err := writeStructured(cmd.OutOrStdout(), opts.Format, results)
	if !done && err == nil {
		err = writeCheckText(cmd.OutOrStdout(), results)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}

	if anySensitive {
		return NewExitError(ExitSensitive, "sensitive content found")
	}
	return nil
}

func writeCheckText(w io.Writer, results []CheckResult) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s: ", r.Source); err != nil {
			return err
		}
		if !r.Sensitive {
			if _, err := cleanColor.Fprintln(w, app.MsgClean); err != nil {
				return err
			}
			continue
		}
		if _, err := sensitiveColor.Fprint(w, app.MsgSensitive); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, " (%s)\n", strings.Join(r.Findings, ", ")); err != nil {
			return err
		}
	}
	return nil
}
