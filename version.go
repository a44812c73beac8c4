package automata

import _ "embed"

// Version is the release version of the automata module.
//
//go:embed VERSION
var Version string
