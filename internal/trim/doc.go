// Package trim implements snip's stream-trimming engine.
//
// # Overview
//
// The engine emits a prefix of one input stream to an append-only sink. A
// prefix is either "the first N units" or "everything except the last N
// units", where a unit is a byte or a line. The second form is the hard one:
// it must run in bounded memory even when the total input length is unknown
// (pipes), while exploiting random access when the source supports it
// (regular files) so nothing needs buffering at all.
//
// Four elision variants cover the unit x seekability matrix:
//
//   - bytes, seekable:  length probe, then one bounded forward copy. O(1) memory.
//   - bytes, streaming: double-buffer for small N, block ring for large N. O(N) memory.
//   - lines, seekable:  backward block scan from EOF counting newlines. O(blocksize) memory.
//   - lines, streaming: FIFO queue of counted blocks, evicted from the head. ~O(N) memory.
//
// API surface (internal)
//
//	e := trim.New(trim.Options{})
//	err := e.Process(stdout, f, "data.log", trim.Request{
//	    Unit:  trim.Lines,
//	    Count: 10,
//	    Elide: true, // all but the last 10 lines
//	})
//
// The engine borrows the source and sink for the duration of one call; every
// buffer it allocates is released before Process returns. Calls share no
// state, so distinct sources may be processed on distinct goroutines with
// distinct Engine values.
//
// # Errors
//
// All failures are classified (read, write, seek, shrink, overflow) and carry
// the source's display name; see Error. Nothing is retried, and output
// already written before a failure stands.
package trim
