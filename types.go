package framesplit

import "github.com/go-tabular/framesplit/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing the built-in
// Frame implementations to depend on `types` without depending on the root
// framesplit package, while still providing a convenient `framesplit.Frame`,
// `framesplit.Axis`, etc. for users.
type (
	Frame = types.Frame
	Axis  = types.Axis
	Span  = types.Span
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export Axis constants from the types subpackage.
const (
	AxisRows    = types.AxisRows
	AxisColumns = types.AxisColumns
	AxisBoth    = types.AxisBoth
)
