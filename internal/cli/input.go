package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-doc-keeper/internal/validators"
)

const stdinSource = "-"

// input is one document handed to a command.
type input struct {
	source  string
	content string
}

// readInputs reads every file named in args, or standard input when args
// is empty. "-" stands for standard input. Inputs above the document size
// limit are rejected.
func readInputs(cmd *cobra.Command, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{stdinSource}
	}

	inputs := make([]input, 0, len(args))
	for _, source := range args {
		var (
			data []byte
			err  error
		)
		if source == stdinSource {
			data, err = io.ReadAll(io.LimitReader(cmd.InOrStdin(), validators.MaxContentSize+1))
		} else {
			data, err = os.ReadFile(source)
		}
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("read %s", source), err)
		}
		if len(data) > validators.MaxContentSize {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("read %s", source), validators.ErrContentTooLarge)
		}

		inputs = append(inputs, input{source: source, content: string(data)})
	}

	return inputs, nil
}
