// Package ui provides the terminal user interface for foxtrot.
//
// # Overview
//
// The UI is a single Bubble Tea model: one photo, one loading flag. Init
// issues the mount fetch, the r key issues manual fetches, and an optional
// timed refresh re-issues them on a tick. Fetch commands run in their own
// goroutines, write their outcome to the shared state store, and report back
// as messages; the model renders whatever snapshot it saw last.
//
// # Package Structure
//
//   - app.go: Model, messages, commands, key handling, and the Run function
//   - views.go: header, photo area, footer, and help overlay rendering
//   - keys.go: key bindings
//   - theme.go: color themes and lipgloss styles
//   - strings.go: text truncation helpers for long image URLs
//
// Fetch failures never render; they go to the diagnostic log and the
// previous photo stays on screen.
package ui
