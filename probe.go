package framesplit

import (
	"fmt"

	"github.com/go-tabular/framesplit/types"
)

// Length returns the number of rows of a full table.
//
// Unlike the splitter, which accepts single-column vectors and forces the row
// axis for them, the dimension probes are strict: a nil frame or a column
// vector fails with ErrNotTable.
//
// An empty table explicitly reports 0, never a sentinel or negative value.
//
// Parameters:
//   - f: Frame to measure
//
// Returns:
//   - int: Row count, >= 0
//   - error: ErrNotTable if f is nil or a column vector
func Length(f types.Frame) (int, error) {
	if f == nil {
		return 0, fmt.Errorf("%w: nil frame", types.ErrNotTable)
	}
	if f.IsColumn() {
		return 0, fmt.Errorf("%w: single-column vector", types.ErrNotTable)
	}

	if n := f.NumRows(); n > 0 {
		return n, nil
	}

	return 0, nil
}

// Width returns the number of columns of a full table.
//
// Same contract as Length: strict about non-table inputs, explicit 0 for an
// empty column axis.
//
// Parameters:
//   - f: Frame to measure
//
// Returns:
//   - int: Column count, >= 0
//   - error: ErrNotTable if f is nil or a column vector
func Width(f types.Frame) (int, error) {
	if f == nil {
		return 0, fmt.Errorf("%w: nil frame", types.ErrNotTable)
	}
	if f.IsColumn() {
		return 0, fmt.Errorf("%w: single-column vector", types.ErrNotTable)
	}

	if n := f.NumCols(); n > 0 {
		return n, nil
	}

	return 0, nil
}
