// Package execrunner provides the CommandRunner seam between tool adapters
// and os/exec, so subprocess invocation can be mocked in tests.
package execrunner

import (
	"context"
	"os"
	"os/exec"
)

// CommandRunner defines the interface for running external commands.
// Neither tool has a clean version flag, so availability checks go through
// Run and there is no output-capturing variant.
type CommandRunner interface {
	// Run executes a command and waits for it to exit
	Run(ctx context.Context, name string, args ...string) error
	// RunInDir executes a command with the given working directory
	RunInDir(ctx context.Context, dir, name string, args ...string) error
}

// ExecCommandRunner is the production implementation using os/exec
type ExecCommandRunner struct {
	// Verbose passes the subprocess stdout/stderr through to the console
	Verbose bool
}

func (r *ExecCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	return r.RunInDir(ctx, "", name, args...)
}

func (r *ExecCommandRunner) RunInDir(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if r.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}
