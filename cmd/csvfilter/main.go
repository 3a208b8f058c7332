package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Exit codes
const (
	ExitSuccess    = 0
	ExitInputError = 1
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := newFilterCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return ExitInputError
	}
	return ExitSuccess
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
