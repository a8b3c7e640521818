package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-doc-keeper/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	code := cli.GetExitCode(err)
	// a sensitive verdict was already printed
	if code != cli.ExitSensitive {
		fmt.Fprintln(os.Stderr, "docscan:", err)
	}
	os.Exit(code)
}
