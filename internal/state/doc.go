// Package state provides thread-safe state management for the displayed fox.
//
// # Overview
//
// This package implements a simple but thread-safe store for the image state
// shared between fetch commands and the UI. Bubble Tea runs commands in their
// own goroutines, so the store is the coordination point where fetch results
// meet rendering.
//
// # Semantics
//
// Begin marks a request outstanding. Complete resolves it: on success the
// image URL is replaced, on failure the previous URL is kept and the error is
// recorded for diagnostics. Complete overwrites unconditionally and carries
// no sequence numbers, so when requests overlap the last response to land
// wins regardless of issue order.
package state
