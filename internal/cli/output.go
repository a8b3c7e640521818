package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Exit codes of docscan.
const (
	ExitSuccess      = 0 // nothing sensitive, or mask succeeded
	ExitSensitive    = 1 // check found sensitive content
	ExitCommandError = 2 // bad flags, unreadable input
)

var (
	sensitiveColor = color.New(color.FgRed, color.Bold)
	cleanColor     = color.New(color.FgGreen)
	headerColor    = color.New(color.FgCyan)
)

// ExitError carries the process exit code of a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from err. Errors that are not
// ExitErrors are command errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// writeStructured encodes v in a machine readable format. It reports
// false for the text format, which every command renders itself.
func writeStructured(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case FormatJSON:
		return true, writeJSON(w, v)
	case FormatYAML:
		return true, writeYAML(w, v)
	default:
		return false, nil
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
