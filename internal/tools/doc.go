// Package tools wraps the external programs audiotag drives: m4b-tool for
// merging and converting, and ffmpeg for writing tags and chapters.
//
// Every call is built as an explicit argument vector and executed through the
// Executor interface, so no shell ever interprets user-supplied paths. Tests
// replace the executor with WithExecutor to capture argument vectors without
// spawning processes.
package tools
