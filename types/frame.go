package types

// Axis selects the dimension a chunksize or split operation applies to.
type Axis int

const (
	// AxisRows selects the row dimension.
	AxisRows Axis = 0

	// AxisColumns selects the column dimension.
	AxisColumns Axis = 1

	// AxisBoth selects both dimensions. Valid for chunksize computation only;
	// splitting operates along exactly one axis at a time.
	AxisBoth Axis = 2
)

// String returns a human-readable axis name, used in log fields and metric labels.
func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisColumns:
		return "columns"
	case AxisBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Valid reports whether the axis is one of the defined selectors.
func (a Axis) Valid() bool {
	return a == AxisRows || a == AxisColumns || a == AxisBoth
}

// Frame is the two-dimensional table abstraction the splitter operates on.
//
// A Frame has an ordered row axis and an ordered column axis, each of known
// finite length. Implementations must treat the frame as immutable from the
// splitter's perspective: slicing returns a view or copy and never mutates
// the receiver.
//
// Slicing contract:
//   - Ranges are half-open [start, end)
//   - Out-of-range bounds are clamped, never an error: slicing past the end
//     of an axis yields a shorter or empty frame
//   - Concatenating consecutive slices in order reconstructs the original
//     data with order preserved, no overlap, no gaps
//
// The built-in implementations live in the frame package (in-memory) and the
// arrowframe package (Apache Arrow backed).
type Frame interface {
	// NumRows returns the number of rows (0 for an empty frame).
	NumRows() int

	// NumCols returns the number of columns (0 for an empty frame).
	NumCols() int

	// SliceRows returns the frame restricted to rows [start, end), clamped
	// to the valid row range.
	SliceRows(start, end int) Frame

	// SliceCols returns the frame restricted to columns [start, end),
	// clamped to the valid column range.
	SliceCols(start, end int) Frame

	// IsColumn reports whether this frame is a single-column vector rather
	// than a full table. Column vectors are always split along the row axis
	// regardless of the requested axis, and are rejected by the strict
	// dimension probes.
	IsColumn() bool
}
