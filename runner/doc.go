// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package runner tabulates independent races concurrently.

A CSV export can hold several races, and each race is a pure,
self-contained computation: it owns its RaceData, produces its own
RaceResult, and shares nothing with its siblings. Run dispatches races
to a worker pool and collects outcomes in input order, so callers get
parallelism without any locking in the engine itself.

	outcomes := runner.Run(races, rcv.RoundAddOneFloor, 0)

One race failing validation or tripping an internal invariant yields an
error in its own Outcome and leaves every other race untouched.
*/
package runner
