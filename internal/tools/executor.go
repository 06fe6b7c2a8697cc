package tools

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Invocation describes a single external program run.
type Invocation struct {
	Binary  string
	Args    []string
	Timeout time.Duration
}

// Output holds the captured streams of a completed run.
type Output struct {
	Stdout string
	Stderr string
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, inv Invocation) (Output, error)
}

type commandExecutor struct{}

// NewCommandExecutor returns the Executor backed by os/exec.
func NewCommandExecutor() Executor {
	return commandExecutor{}
}

func (commandExecutor) Run(ctx context.Context, inv Invocation) (Output, error) {
	runCtx := ctx
	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, inv.Binary, inv.Args...) //nolint:gosec
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = 5 * time.Second

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return out, nil
	}

	perr := &ProcessError{
		Binary:   inv.Binary,
		Args:     append([]string(nil), inv.Args...),
		ExitCode: -1,
		Stdout:   out.Stdout,
		Stderr:   out.Stderr,
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		perr.ExitCode = exitErr.ExitCode()
	}
	if ctxErr := runCtx.Err(); ctxErr != nil {
		perr.Err = errors.Join(ctxErr, err)
	}
	return out, perr
}
