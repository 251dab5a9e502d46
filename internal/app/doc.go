// Package app provides the orchestration layer for the foxtrot application.
//
// # Overview
//
// This package wires together configuration, preferences, the diagnostic
// log, the floof API client, and the state store, then hands everything to
// the UI. It serves as the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load foxtrot configuration from ~/.config/foxtrot/config.toml
//  2. Load user preferences (theme, preview) from ~/.config/foxtrot/prefs.toml
//  3. Open the diagnostic log file under the state directory
//  4. Initialize the HTTP client for the floof API
//  5. Create the state store holding the bundled placeholder
//  6. Launch the Bubble Tea UI, which issues the mount fetch
package app
