// Package pipeline runs one audiotag invocation end to end.
//
// A run moves through a fixed sequence of states:
//
//	Init -> MetadataFetched -> Confirmed -> Merged (optional) -> Tagged -> Relocated -> Done
//
// Any failure jumps to Aborted. The destination directory is created only
// after the operator confirms and is never removed; the workspace nested
// inside it is always removed before Run returns. Stages execute strictly in
// order with no retries.
package pipeline
