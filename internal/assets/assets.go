// Package assets holds static files bundled into the foxtrot binary.
package assets

import _ "embed"

// DefaultFox is the placeholder image shown before the first successful
// fetch.
//
//go:embed default_fox.png
var DefaultFox []byte
