package tools

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"audiotag/internal/logging"
)

// Option configures a Merger or Tagger.
type Option func(*runner)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(r *runner) {
		if exec != nil {
			r.exec = exec
		}
	}
}

// WithLogger routes tool output to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type runner struct {
	binary  string
	timeout time.Duration
	exec    Executor
	logger  *slog.Logger
}

func newRunner(binary string, timeout time.Duration, component string, opts []Option) (runner, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return runner{}, errors.New(component + " binary required")
	}
	r := runner{
		binary:  binary,
		timeout: timeout,
		exec:    commandExecutor{},
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&r)
	}
	r.logger = logging.NewComponentLogger(r.logger, component)
	return r, nil
}

// run executes args and logs the captured streams: stdout at debug and
// stderr at info on success, both at error on failure.
func (r runner) run(ctx context.Context, args []string) error {
	logger := logging.WithContext(ctx, r.logger)
	inv := Invocation{Binary: r.binary, Args: args, Timeout: r.timeout}
	logger.Debug("running external tool",
		logging.String("binary", r.binary),
		logging.Any("args", args),
	)

	start := time.Now()
	out, err := r.exec.Run(ctx, inv)
	if err != nil {
		var perr *ProcessError
		if !errors.As(err, &perr) {
			perr = &ProcessError{Binary: r.binary, Args: args, ExitCode: -1, Stdout: out.Stdout, Stderr: out.Stderr, Err: err}
		}
		if s := strings.TrimSpace(perr.Stdout); s != "" {
			logger.Debug("tool stdout", logging.String("output", s))
		}
		if s := strings.TrimSpace(perr.Stderr); s != "" {
			logger.Error("tool stderr", logging.String("output", s))
		}
		logging.ErrorWithContext(logger, "external tool failed", "tool_failure",
			logging.String("binary", r.binary),
			logging.Int("exit_code", perr.ExitCode),
			logging.Error(perr.Err),
			logging.String(logging.FieldErrorHint, "run the printed command manually to inspect its output"),
		)
		return perr
	}

	if s := strings.TrimSpace(out.Stdout); s != "" {
		logger.Debug("tool stdout", logging.String("output", s))
	}
	if s := strings.TrimSpace(out.Stderr); s != "" {
		logger.Info("tool stderr", logging.String("output", s))
	}
	logger.Debug("external tool finished",
		logging.String("binary", r.binary),
		logging.Duration("elapsed", time.Since(start)),
	)
	return nil
}
