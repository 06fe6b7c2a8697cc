package preflight

import (
	"context"

	"audiotag/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the filesystem and catalog checks for cfg. outputRoot
// overrides the configured library root when non-empty.
func RunAll(ctx context.Context, cfg *config.Config, outputRoot string) []Result {
	if cfg == nil {
		return nil
	}
	if outputRoot == "" {
		outputRoot = cfg.Library.OutputRoot
	}

	var results []Result
	if outputRoot != "" {
		results = append(results, CheckCreatableDirectory("Output root", outputRoot))
	} else {
		results = append(results, Result{Name: "Output root", Detail: "not configured (pass it on the command line)"})
	}
	results = append(results, CheckCreatableDirectory("Lock directory", cfg.Library.LockDir))
	results = append(results, CheckCatalog(ctx, cfg.Catalog.BaseURL))
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
