package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"audiotag/internal/services"
)

// ProcessError reports an external program that failed to start, exited
// non-zero, or was stopped by cancellation or timeout. Both captured streams
// are kept for diagnostics.
type ProcessError struct {
	Binary   string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Binary, e.ExitCode)
	if e.ExitCode < 0 {
		msg = fmt.Sprintf("%s did not complete", e.Binary)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if tail := lastLine(e.Stderr); tail != "" {
		msg += " (" + tail + ")"
	}
	return msg
}

func (e *ProcessError) Unwrap() error { return e.Err }

// Is matches services.ErrExternalTool, and services.ErrCanceled when the run
// was stopped by context cancellation.
func (e *ProcessError) Is(target error) bool {
	switch target {
	case services.ErrExternalTool:
		return true
	case services.ErrCanceled:
		return errors.Is(e.Err, context.Canceled)
	}
	return false
}

// CommandLine renders the invocation for log output. It is not shell-safe.
func (e *ProcessError) CommandLine() string {
	return strings.TrimSpace(e.Binary + " " + strings.Join(e.Args, " "))
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	}
	return strings.TrimSpace(s)
}
