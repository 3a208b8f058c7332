// Package testutil runs the command line in-process for tests.
package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// ExecResult holds the result of a CLI command execution.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunFunc is a command-line entry point that returns its exit code.
type RunFunc func(args []string, stdout, stderr io.Writer) int

// RunCLI calls run with args and captures its output streams.
func RunCLI(tb testing.TB, run RunFunc, args ...string) ExecResult {
	tb.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return ExecResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: code,
	}
}

// WriteFile writes content to name inside a fresh temp dir and returns the path.
func WriteFile(tb testing.TB, name, content string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	return path
}
