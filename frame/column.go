package frame

import "github.com/go-tabular/framesplit/types"

// Column is a single-column vector implementation of types.Frame.
//
// A Column reports IsColumn() true, so the splitter always cuts it along the
// row axis regardless of the requested axis, and the strict dimension probes
// reject it. This is the explicit tagged variant of the table/vector
// distinction.
type Column struct {
	name   string
	values []any
}

var _ types.Frame = (*Column)(nil)

// NewColumn creates a column vector.
//
// Parameters:
//   - name: Column name
//   - values: Ordered values
//
// Returns:
//   - *Column: Initialized column
func NewColumn(name string, values []any) *Column {
	return &Column{name: name, values: values}
}

// NumRows returns the number of values.
func (c *Column) NumRows() int {
	return len(c.values)
}

// NumCols returns 1; a column vector has exactly one implicit column.
func (c *Column) NumCols() int {
	return 1
}

// IsColumn always reports true.
func (c *Column) IsColumn() bool {
	return true
}

// SliceRows returns a view of values [start, end), clamped to the valid range.
func (c *Column) SliceRows(start, end int) types.Frame {
	start, end = clampRange(start, end, len(c.values))

	return &Column{name: c.name, values: c.values[start:end]}
}

// SliceCols slices the single implicit column: a range covering index 0
// returns the column unchanged, any other range returns an empty column.
// The splitter never takes this path (column vectors are forced onto the row
// axis); it exists to satisfy the Frame contract.
func (c *Column) SliceCols(start, end int) types.Frame {
	start, end = clampRange(start, end, 1)
	if end-start == 1 {
		return c
	}

	return &Column{name: c.name, values: c.values[:0]}
}

// Name returns the column name.
func (c *Column) Name() string {
	return c.name
}

// Values returns the backing value slice, not a copy.
func (c *Column) Values() []any {
	return c.values
}

// At returns the value at row r.
func (c *Column) At(r int) any {
	return c.values[r]
}
