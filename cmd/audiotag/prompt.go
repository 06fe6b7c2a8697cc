package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"audiotag/internal/pipeline"
)

const (
	promptText = "Continue? [y|n]: "
	retryText  = "Please enter 'y' or 'n'."
	exitText   = "Exiting..."
)

var errNotInteractive = errors.New("standard input is not a terminal; pass --force to run without confirmation")

// prompter prints the run summary and reads a y/n answer. It serves a single
// run: once Confirm returns on cancellation, the reading goroutine stays
// blocked on in, so the prompter must not be reused.
type prompter struct {
	in  io.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: in, out: out}
}

func (p *prompter) Present(summary pipeline.Summary) {
	renderSummary(p.out, summary)
}

func (p *prompter) Confirm(ctx context.Context, _ pipeline.Summary) (bool, error) {
	if f, ok := p.in.(*os.File); ok && !isTerminal(f) {
		return false, errNotInteractive
	}

	type answer struct {
		ok  bool
		err error
	}
	done := make(chan answer, 1)
	// Reads cannot be interrupted; on cancellation this goroutine leaks until
	// stdin yields a line or EOF.
	go func() {
		ok, err := p.ask()
		done <- answer{ok: ok, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return false, ctx.Err()
	case a := <-done:
		return a.ok, a.err
	}
}

// ask repeats the prompt until it reads y or n. End of input declines.
func (p *prompter) ask() (bool, error) {
	reader := bufio.NewReader(p.in)
	for {
		fmt.Fprint(p.out, promptText)
		line, err := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			fmt.Fprintln(p.out, exitText)
			return false, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(p.out)
				return false, nil
			}
			return false, fmt.Errorf("read answer: %w", err)
		}
		fmt.Fprintln(p.out, retryText)
	}
}
