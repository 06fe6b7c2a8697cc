package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"audiotag/internal/book"
	"audiotag/internal/config"
	"audiotag/internal/logging"
	"audiotag/internal/manifest"
	"audiotag/internal/services"
	"audiotag/internal/tools"
	"audiotag/internal/workspace"
)

// staleWorkspaceAge is how old a workspace must be before a later run treats
// it as abandoned. Younger ones may belong to a run that is still going.
const staleWorkspaceAge = time.Hour

// Dependencies are the collaborators a Pipeline drives. WriteManifest
// defaults to manifest.Write.
type Dependencies struct {
	Source        MetadataSource
	Merger        Merger
	Tagger        Tagger
	Presenter     Presenter
	Confirmer     Confirmer
	WriteManifest ManifestWriter
	Logger        *slog.Logger
}

// Pipeline executes a single run.
type Pipeline struct {
	opts    Options
	lockDir string
	deps    Dependencies
	logger  *slog.Logger
	state   State
}

// New validates opts and returns a pipeline ready to Run.
func New(cfg *config.Config, opts Options, deps Dependencies) (*Pipeline, error) {
	opts.ASIN = strings.TrimSpace(opts.ASIN)
	opts.InputPath = strings.TrimSpace(opts.InputPath)
	opts.OutputRoot = strings.TrimSpace(opts.OutputRoot)
	if opts.ASIN == "" {
		return nil, services.Wrap(services.ErrInvalidInput, "init", "validate options", "asin required", nil)
	}
	if opts.InputPath == "" {
		return nil, &InvalidInputError{Path: opts.InputPath, Reason: "input path required"}
	}
	if opts.OutputRoot == "" {
		return nil, services.Wrap(services.ErrConfiguration, "init", "validate options",
			"output root required (pass it as an argument or set library.output_root)", nil)
	}
	if deps.Source == nil {
		return nil, errors.New("metadata source required")
	}
	if deps.Tagger == nil {
		return nil, errors.New("tagger required")
	}
	if opts.Merge && deps.Merger == nil {
		return nil, errors.New("merger required when merge is requested")
	}
	if !opts.Force && deps.Confirmer == nil {
		return nil, errors.New("confirmer required unless forced")
	}

	if deps.WriteManifest == nil {
		deps.WriteManifest = manifest.Write
	}

	lockDir := ""
	if cfg != nil {
		lockDir = cfg.Library.LockDir
	}
	return &Pipeline{
		opts:    opts,
		lockDir: lockDir,
		deps:    deps,
		logger:  logging.NewComponentLogger(deps.Logger, "pipeline"),
		state:   StateInit,
	}, nil
}

// State reports the most recent state reached.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the pipeline. A declined confirmation returns a Result with
// Declined set and a nil error.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	result := Result{RunID: runID}
	logger := logging.WithContext(ctx, p.logger)

	meta, err := p.fetchMetadata(ctx)
	if err != nil {
		return p.abort(result), err
	}
	result.Metadata = meta

	ext := filepath.Ext(p.opts.InputPath)
	if p.opts.Merge {
		ext = filepath.Ext(tools.MergedFileName)
	}
	destDir := DestinationDir(p.opts.OutputRoot, meta.Author, meta.Title, p.opts.ASIN)
	summary := Summary{
		Metadata:        meta,
		Merge:           p.opts.Merge,
		IncludeChapters: p.opts.IncludeChapters,
		DestinationDir:  destDir,
		OutputPath:      filepath.Join(destDir, OutputFileName(meta.Title, p.opts.ASIN, ext)),
	}
	result.DestinationDir = destDir
	if p.deps.Presenter != nil {
		p.deps.Presenter.Present(summary)
	}

	ok, err := p.confirm(ctx, summary)
	if err != nil {
		return p.abort(result), err
	}
	if !ok {
		logger.Info("run declined by operator", logging.String(logging.FieldEventType, "run_declined"))
		result.Declined = true
		return p.abort(result), nil
	}
	p.transition(StateConfirmed)

	lock, err := acquireRunLock(p.lockDir, p.opts.ASIN)
	if err != nil {
		return p.abort(result), err
	}
	defer func() {
		if err := lock.release(); err != nil {
			logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return p.abort(result), services.Wrap(services.ErrFileWrite, "confirmed", "create destination", destDir, err)
	}

	if swept := workspace.SweepStale(destDir, staleWorkspaceAge, logger); len(swept.Removed) > 0 {
		logger.Debug("leftover workspaces removed", logging.Int("count", len(swept.Removed)))
	}

	err = workspace.With(destDir, func(ws *workspace.Workspace) error {
		logger.Debug("workspace acquired", logging.String("workspace", ws.Path()))
		output, err := p.process(ctx, ws, meta, destDir)
		result.OutputPath = output
		return err
	})
	if err != nil {
		result.OutputPath = ""
		return p.abort(result), err
	}

	p.transition(StateDone)
	result.State = StateDone
	logger.Info("audiobook tagged",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.String("output", result.OutputPath),
	)
	return result, nil
}

func (p *Pipeline) process(ctx context.Context, ws *workspace.Workspace, meta book.Metadata, destDir string) (string, error) {
	input := p.opts.InputPath
	info, err := os.Stat(input)
	if err != nil {
		return "", &InvalidInputError{Path: input, Reason: fmt.Sprintf("cannot read input: %v", err)}
	}
	if !p.opts.Merge && info.IsDir() {
		return "", &InvalidInputError{Path: input, Reason: "a directory can only be processed with merge enabled"}
	}

	var manifestPath string
	if err := p.stage(ctx, "manifest", func(ctx context.Context) error {
		path, err := p.deps.WriteManifest(meta, ws.Path(), p.opts.IncludeChapters)
		manifestPath = path
		return err
	}); err != nil {
		return "", err
	}

	if p.opts.Merge {
		if err := p.stage(ctx, "merge", func(ctx context.Context) error {
			merged, err := p.deps.Merger.Merge(ctx, input, ws.Path())
			if err == nil {
				input = merged
			}
			return err
		}); err != nil {
			return "", err
		}
		p.transition(StateMerged)
	}

	var tagged string
	if err := p.stage(ctx, "tag", func(ctx context.Context) error {
		out, err := p.deps.Tagger.Tag(ctx, input, manifestPath, ws.Path(), p.opts.IncludeChapters)
		tagged = out
		return err
	}); err != nil {
		return "", err
	}
	p.transition(StateTagged)

	target := filepath.Join(destDir, OutputFileName(meta.Title, p.opts.ASIN, filepath.Ext(tagged)))
	if err := p.stage(ctx, "relocate", func(context.Context) error {
		return relocate(tagged, target)
	}); err != nil {
		return "", err
	}
	p.transition(StateRelocated)
	return target, nil
}

func (p *Pipeline) fetchMetadata(ctx context.Context) (book.Metadata, error) {
	var meta book.Metadata
	err := p.stage(ctx, "metadata", func(ctx context.Context) error {
		var err error
		meta, err = p.deps.Source.FetchMetadata(ctx, p.opts.ASIN, p.opts.IncludeChapters)
		return err
	})
	if err != nil {
		return book.Metadata{}, err
	}
	if p.opts.IncludeChapters {
		p.warnBoundaries(ctx, meta.Chapters)
	}
	p.transition(StateMetadataFetched)
	return meta, nil
}

func (p *Pipeline) confirm(ctx context.Context, summary Summary) (bool, error) {
	if p.opts.Force {
		p.logger.Debug("confirmation skipped", logging.Bool("force", true))
		return true, nil
	}
	ok, err := p.deps.Confirmer.Confirm(ctx, summary)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, services.Wrap(services.ErrCanceled, "confirm", "prompt", "", ctxErr)
		}
		return false, fmt.Errorf("confirmation: %w", err)
	}
	return ok, nil
}

// stage runs fn with stage-scoped context and logging.
func (p *Pipeline) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	stageCtx := services.WithStage(ctx, name)
	logger := logging.WithContext(stageCtx, p.logger)
	logger.Debug("stage started", logging.String(logging.FieldEventType, "stage_start"))

	if err := fn(stageCtx); err != nil {
		logger.Error("stage failed",
			logging.String(logging.FieldEventType, "stage_failure"),
			logging.String("error_kind", services.Kind(err)),
			logging.Error(err),
		)
		return err
	}
	logger.Debug("stage completed", logging.String(logging.FieldEventType, "stage_complete"))
	return nil
}

func (p *Pipeline) warnBoundaries(ctx context.Context, chapters []book.Chapter) {
	logger := logging.WithContext(ctx, p.logger)
	for _, issue := range book.CheckBoundaries(chapters) {
		logging.WarnWithContext(logger, "chapter boundary irregular", "chapter_boundary",
			logging.Int("chapter", issue.Index),
			logging.String("kind", issue.Kind),
			logging.Int64("delta_ms", issue.DeltaMs),
			logging.String(logging.FieldErrorHint, "verify chapter timings in the catalog"),
			logging.String(logging.FieldImpact, "chapters are written as published"),
		)
	}
}

func (p *Pipeline) transition(next State) {
	p.logger.Debug("state transition",
		logging.String("from", string(p.state)),
		logging.String("to", string(next)),
	)
	p.state = next
}

func (p *Pipeline) abort(result Result) Result {
	p.transition(StateAborted)
	result.State = StateAborted
	return result
}
