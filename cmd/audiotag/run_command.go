package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"audiotag/internal/config"
	"audiotag/internal/pipeline"
	"audiotag/internal/preflight"
	"audiotag/internal/services"
	"audiotag/internal/tools"
)

func runTag(cmd *cobra.Command, ctx *commandContext, flags runFlags, args []string) error {
	asin := strings.TrimSpace(flags.asin)
	if asin == "" {
		return errors.New("--asin is required")
	}
	if flags.debug {
		return showMetadata(cmd, ctx, asin, flags.chapters)
	}
	if len(args) == 0 {
		return errors.New("input path required")
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	outputRoot := cfg.Library.OutputRoot
	if len(args) > 1 {
		outputRoot = strings.TrimSpace(args[1])
	}

	if err := requireTools(cfg, flags.merge); err != nil {
		return err
	}

	source, err := ctx.catalogClient()
	if err != nil {
		return err
	}
	tagger, err := tools.NewTagger(cfg.Tools.FFmpegBinary, cfg.TagTimeout(), tools.WithLogger(logger))
	if err != nil {
		return err
	}
	prompt := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	collaborators := pipeline.Dependencies{
		Source:    source,
		Tagger:    tagger,
		Presenter: prompt,
		Confirmer: prompt,
		Logger:    logger,
	}
	if flags.merge {
		merger, err := tools.NewMerger(cfg.Tools.MergeBinary, cfg.MergeTimeout(), tools.WithLogger(logger))
		if err != nil {
			return err
		}
		collaborators.Merger = merger
	}

	p, err := pipeline.New(cfg, pipeline.Options{
		ASIN:            asin,
		InputPath:       args[0],
		OutputRoot:      outputRoot,
		Merge:           flags.merge,
		IncludeChapters: flags.chapters,
		Force:           flags.force,
	}, collaborators)
	if err != nil {
		return err
	}

	result, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if result.Declined {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}
	fmt.Fprintf(out, "Tagged %q by %s\n", result.Metadata.Title, result.Metadata.Author)
	fmt.Fprintf(out, "Output: %s\n", result.OutputPath)
	return nil
}

// requireTools fails fast when ffmpeg, or m4b-tool for a merge, cannot be
// resolved.
func requireTools(cfg *config.Config, merge bool) error {
	for _, status := range preflight.CheckSystemDeps(cfg) {
		if status.Available {
			continue
		}
		if status.Optional && !merge {
			continue
		}
		return services.Wrap(services.ErrConfiguration, "init", "check tools",
			fmt.Sprintf("%s: %s (%s)", status.Name, status.Detail, status.Description), nil)
	}
	return nil
}
