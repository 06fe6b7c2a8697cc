// Package preflight provides readiness checks for the filesystem paths,
// external programs, and catalog service audiotag depends on.
//
// The CLI "check" command runs every check and renders the results; the run
// command uses CheckSystemDeps to fail fast when a required binary is
// missing.
package preflight
