package arrowframe

import (
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"

	"github.com/go-tabular/framesplit/types"
)

// Record adapts an arrow.Record to types.Frame.
type Record struct {
	rec arrow.Record
}

var _ types.Frame = (*Record)(nil)

// New wraps an Arrow record as a frame.
//
// Parameters:
//   - rec: Arrow record to adapt (not retained)
//
// Returns:
//   - *Record: Frame view over the record
//
// Example:
//
//	f := arrowframe.New(rec)
//	parts, err := splitter.Split(framesplit.AxisRows, 4, f)
func New(rec arrow.Record) *Record {
	return &Record{rec: rec}
}

// Underlying returns the wrapped Arrow record.
func (r *Record) Underlying() arrow.Record {
	return r.rec
}

// NumRows returns the number of rows.
func (r *Record) NumRows() int {
	return int(r.rec.NumRows())
}

// NumCols returns the number of columns.
func (r *Record) NumCols() int {
	return int(r.rec.NumCols())
}

// IsColumn always reports false; use Column for vector semantics.
func (r *Record) IsColumn() bool {
	return false
}

// SliceRows returns a zero-copy view of rows [start, end), clamped to the
// valid range.
func (r *Record) SliceRows(start, end int) types.Frame {
	start, end = clampRange(start, end, int(r.rec.NumRows()))

	return &Record{rec: r.rec.NewSlice(int64(start), int64(end))}
}

// SliceCols returns a record restricted to columns [start, end), clamped to
// the valid range. Column arrays are shared, not copied; only the schema and
// the column list are rebuilt.
func (r *Record) SliceCols(start, end int) types.Frame {
	start, end = clampRange(start, end, int(r.rec.NumCols()))

	fields := r.rec.Schema().Fields()[start:end]
	cols := make([]arrow.Array, 0, end-start)
	for i := start; i < end; i++ {
		cols = append(cols, r.rec.Column(i))
	}

	sub := arrow.NewSchema(fields, nil)

	return &Record{rec: array.NewRecord(sub, cols, r.rec.NumRows())}
}

// Column adapts a single arrow.Array to types.Frame as a column vector.
//
// Like frame.Column it reports IsColumn() true, so the splitter always cuts
// it along the row axis and the strict dimension probes reject it.
type Column struct {
	name string
	arr  arrow.Array
}

var _ types.Frame = (*Column)(nil)

// NewColumn wraps an Arrow array as a column vector frame.
//
// Parameters:
//   - name: Column name
//   - arr: Arrow array to adapt (not retained)
//
// Returns:
//   - *Column: Frame view over the array
func NewColumn(name string, arr arrow.Array) *Column {
	return &Column{name: name, arr: arr}
}

// Underlying returns the wrapped Arrow array.
func (c *Column) Underlying() arrow.Array {
	return c.arr
}

// Name returns the column name.
func (c *Column) Name() string {
	return c.name
}

// NumRows returns the array length.
func (c *Column) NumRows() int {
	return c.arr.Len()
}

// NumCols returns 1.
func (c *Column) NumCols() int {
	return 1
}

// IsColumn always reports true.
func (c *Column) IsColumn() bool {
	return true
}

// SliceRows returns a zero-copy view of values [start, end), clamped to the
// valid range.
func (c *Column) SliceRows(start, end int) types.Frame {
	start, end = clampRange(start, end, c.arr.Len())

	return &Column{name: c.name, arr: array.NewSlice(c.arr, int64(start), int64(end))}
}

// SliceCols slices the single implicit column: a range covering index 0
// returns the column unchanged, any other range returns an empty column.
func (c *Column) SliceCols(start, end int) types.Frame {
	start, end = clampRange(start, end, 1)
	if end-start == 1 {
		return c
	}

	return &Column{name: c.name, arr: array.NewSlice(c.arr, 0, 0)}
}

// clampRange normalizes a half-open range against [0, n].
func clampRange(start, end, n int) (int, int) {
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	if end < start {
		end = start
	}

	return start, end
}
