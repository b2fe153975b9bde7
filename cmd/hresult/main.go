// Command hresult decodes Windows HRESULT values, searches the HRESULT table and serves it
// over HTTP.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cloudsoda/go-hresult/erref"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, erref.ErrInvalidArgument):
		fmt.Fprintln(stderr, err)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "hresult: %v\n", err)
		return exitFailure
	}
}
