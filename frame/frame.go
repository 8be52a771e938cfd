package frame

import (
	"errors"
	"fmt"

	"github.com/go-tabular/framesplit/types"
)

// ErrRagged is returned when column lengths disagree.
var ErrRagged = errors.New("columns have unequal lengths")

// ErrShapeMismatch is returned when the number of names and columns differ.
var ErrShapeMismatch = errors.New("column names and columns count mismatch")

// Table is a column-oriented in-memory implementation of types.Frame.
//
// Storage is one slice per column; all columns have the same length. Slices
// produced by SliceRows and SliceCols are views sharing the parent's storage.
type Table struct {
	names []string
	cols  [][]any
	rows  int
}

var _ types.Frame = (*Table)(nil)

// NewTable creates a table from named columns.
//
// Parameters:
//   - names: Column names, one per column
//   - cols: Column data; all slices must have equal length
//
// Returns:
//   - *Table: Initialized table
//   - error: ErrShapeMismatch or ErrRagged for inconsistent input
//
// Example:
//
//	t, err := frame.NewTable(
//	    []string{"id", "name"},
//	    [][]any{{1, 2, 3}, {"a", "b", "c"}},
//	)
func NewTable(names []string, cols [][]any) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%w: %d names, %d columns", ErrShapeMismatch, len(names), len(cols))
	}

	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0])
		for i, c := range cols {
			if len(c) != rows {
				return nil, fmt.Errorf("%w: column %q has %d rows, expected %d", ErrRagged, names[i], len(c), rows)
			}
		}
	}

	return &Table{names: names, cols: cols, rows: rows}, nil
}

// Empty creates a table with zero rows and zero columns.
func Empty() *Table {
	return &Table{}
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.rows
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.cols)
}

// IsColumn always reports false; a Table is a full table even with a single
// column. Use Column for vector semantics.
func (t *Table) IsColumn() bool {
	return false
}

// SliceRows returns a view of rows [start, end), clamped to the valid range.
func (t *Table) SliceRows(start, end int) types.Frame {
	start, end = clampRange(start, end, t.rows)

	cols := make([][]any, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c[start:end]
	}

	return &Table{names: t.names, cols: cols, rows: end - start}
}

// SliceCols returns a view of columns [start, end), clamped to the valid
// range. The row count is preserved even when the result has no columns.
func (t *Table) SliceCols(start, end int) types.Frame {
	start, end = clampRange(start, end, len(t.cols))

	return &Table{
		names: t.names[start:end],
		cols:  t.cols[start:end],
		rows:  t.rows,
	}
}

// Names returns a copy of the column names.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Column returns the data of column i. The returned slice is the backing
// storage, not a copy.
func (t *Table) Column(i int) []any {
	return t.cols[i]
}

// At returns the value at row r, column c.
func (t *Table) At(r, c int) any {
	return t.cols[c][r]
}

// clampRange normalizes a half-open range against [0, n]: bounds are pulled
// into range and an inverted range collapses to empty at start.
func clampRange(start, end, n int) (int, int) {
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	if end < start {
		end = start
	}

	return start, end
}
