package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"audiotag/internal/deps"
	"audiotag/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [output-root]",
		Short: "Verify external tools, library paths, and catalog reachability",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			var outputRoot string
			if len(args) == 1 {
				outputRoot = strings.TrimSpace(args[0])
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			statuses := preflight.CheckSystemDeps(cfg)
			fmt.Fprintln(out, "Tools")
			for _, status := range statuses {
				fmt.Fprintln(out, renderStatusLine(status.Name, dependencyKind(status), dependencyMessage(status), colorize))
			}

			results := preflight.RunAll(cmd.Context(), cfg, outputRoot)
			fmt.Fprintln(out, "Paths and services")
			for _, result := range results {
				kind := statusOK
				if !result.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			if len(deps.Missing(statuses)) > 0 || preflight.Failed(results) {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}
}

func dependencyKind(status deps.Status) statusKind {
	switch {
	case status.Available:
		return statusOK
	case status.Optional:
		return statusWarn
	default:
		return statusError
	}
}

func dependencyMessage(status deps.Status) string {
	if status.Available {
		return status.Path
	}
	if status.Description != "" {
		return fmt.Sprintf("%s; %s", status.Detail, strings.ToLower(status.Description))
	}
	return status.Detail
}
