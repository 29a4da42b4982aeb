package starrating

import _ "embed"

// Version is the release of the library and its tools.
//
//go:embed VERSION
var Version string
