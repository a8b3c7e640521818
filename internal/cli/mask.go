package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-doc-keeper/internal/sensitive"
)

// MaskResult is the masked text of one input.
type MaskResult struct {
	Source  string `json:"source" yaml:"source"`
	Content string `json:"content" yaml:"content"`
}

// NewMaskCommand creates the mask command.
func NewMaskCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mask [file...]",
		Short: "Print inputs with sensitive values replaced by placeholders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMask(rootOpts, cmd, args)
		},
	}
}

func runMask(opts *RootOptions, cmd *cobra.Command, args []string) error {
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	results := make([]MaskResult, 0, len(inputs))
	for _, in := range inputs {
		masked := sensitive.Mask(in.content)
		results = append(results, MaskResult{Source: in.source, Content: masked})

		opts.logger.Debug().Str("source", in.source).Bool("changed", masked != in.content).Msg("masked")
	}

	done, err := writeStructured(cmd.OutOrStdout(), opts.Format, results)
	if !done && err == nil {
		err = writeMaskText(cmd.OutOrStdout(), results)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}

// writeMaskText prints the masked inputs. Several inputs are separated by
// a header line naming the source.
func writeMaskText(w io.Writer, results []MaskResult) error {
	for _, r := range results {
		if len(results) > 1 {
			if _, err := headerColor.Fprintf(w, "==> %s <==\n", r.Source); err != nil {
				return err
			}
		}

		content := r.Content
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		if _, err := fmt.Fprint(w, content); err != nil {
			return err
		}
	}
	return nil
}
