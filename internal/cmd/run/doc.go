// Package run drives one snip invocation: it opens each input in order,
// prints per-file headers when appropriate, and hands the open source to the
// trim engine. A failing input is diagnosed and skipped; the run as a whole
// reports failure if any input failed.
package run
