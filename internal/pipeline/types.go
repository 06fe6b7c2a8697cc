package pipeline

import (
	"context"

	"audiotag/internal/book"
)

// State is a position in the run's state machine.
type State string

const (
	StateInit            State = "init"
	StateMetadataFetched State = "metadata_fetched"
	StateConfirmed       State = "confirmed"
	StateMerged          State = "merged"
	StateTagged          State = "tagged"
	StateRelocated       State = "relocated"
	StateDone            State = "done"
	StateAborted         State = "aborted"
)

// Options carries the per-run choices assembled once by the CLI.
type Options struct {
	ASIN            string
	InputPath       string
	OutputRoot      string
	Merge           bool
	IncludeChapters bool
	// Force skips the operator confirmation.
	Force bool
}

// Result describes how a run ended.
type Result struct {
	RunID string
	State State
	// Declined is set when the operator answered no at the prompt.
	Declined       bool
	Metadata       book.Metadata
	DestinationDir string
	OutputPath     string
}

// Summary is what the operator sees before confirming.
type Summary struct {
	Metadata        book.Metadata
	Merge           bool
	IncludeChapters bool
	DestinationDir  string
	OutputPath      string
}

// MetadataSource fetches book metadata from the catalog.
type MetadataSource interface {
	FetchMetadata(ctx context.Context, asin string, includeChapters bool) (book.Metadata, error)
}

// Merger combines the input into a single container inside workspaceDir.
type Merger interface {
	Merge(ctx context.Context, input, workspaceDir string) (string, error)
}

// Tagger applies the manifest to input, writing a new container inside workspaceDir.
type Tagger interface {
	Tag(ctx context.Context, input, manifestPath, workspaceDir string, includeChapters bool) (string, error)
}

// Presenter shows the summary to the operator. It runs on every run that
// fetched metadata, forced or not.
type Presenter interface {
	Present(summary Summary)
}

// PresentFunc adapts a function to Presenter.
type PresentFunc func(summary Summary)

func (f PresentFunc) Present(summary Summary) {
	f(summary)
}

// ManifestWriter writes the tag manifest into workspaceDir and returns its path.
type ManifestWriter func(meta book.Metadata, workspaceDir string, includeChapters bool) (string, error)

// Confirmer asks the operator whether to proceed.
type Confirmer interface {
	Confirm(ctx context.Context, summary Summary) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, summary Summary) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, summary Summary) (bool, error) {
	return f(ctx, summary)
}
