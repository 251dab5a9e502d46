// Package config handles loading and parsing the foxtrot configuration file.
//
// # Overview
//
// This package reads foxtrot's TOML configuration to discover the floof API
// endpoint, request timeout, optional auto-refresh cadence, and where the
// diagnostic log lives. Every field has a default, so a missing file is not
// an error.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/foxtrot/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/foxtrot/config.toml
//   - Endpoint: https://randomfox.ca/floof/
//   - Request timeout: 10 seconds
//   - Auto-refresh: disabled
//   - Log directory: ~/.local/state/foxtrot
//   - Diagnostic log: <log_dir>/foxtrot.log
package config
