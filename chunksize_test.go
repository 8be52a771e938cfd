package framesplit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tabular/framesplit/frame"
	"github.com/go-tabular/framesplit/types"
)

// newTestTable builds a rows x cols table with distinct int values.
func newTestTable(t *testing.T, rows, cols int) *frame.Table {
	t.Helper()

	names := make([]string, cols)
	data := make([][]any, cols)
	for c := 0; c < cols; c++ {
		names[c] = string(rune('a' + c))
		col := make([]any, rows)
		for r := 0; r < rows; r++ {
			col[r] = c*rows + r
		}
		data[c] = col
	}

	tbl, err := frame.NewTable(names, data)
	require.NoError(t, err)

	return tbl
}

func TestDefaultChunksize(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		numSplits int
		want      int
	}{
		{name: "even division", length: 12, numSplits: 3, want: 4},
		{name: "remainder rounds up", length: 10, numSplits: 3, want: 4},
		{name: "more splits than length", length: 3, numSplits: 10, want: 1},
		{name: "zero length", length: 0, numSplits: 4, want: 0},
		{name: "single split", length: 7, numSplits: 1, want: 7},
		{name: "exact single elements", length: 5, numSplits: 5, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DefaultChunksize(tt.length, tt.numSplits))
		})
	}
}

func TestDefaultChunksize_CeilingLaw(t *testing.T) {
	// ceil(L/N)*N >= L and ceil(L/N)*(N-1) < L for all L >= 0, N >= 1
	// (the second law requires L > 0; for L == 0 the chunksize is 0).
	for length := 0; length <= 100; length++ {
		for numSplits := 1; numSplits <= 12; numSplits++ {
			chunksize := DefaultChunksize(length, numSplits)

			require.GreaterOrEqual(t, chunksize*numSplits, length,
				"length=%d numSplits=%d", length, numSplits)
			if length > 0 {
				require.Less(t, chunksize*(numSplits-1), length,
					"length=%d numSplits=%d", length, numSplits)
			}
		}
	}
}

func TestDefaultChunksize_ZeroSplitsPanics(t *testing.T) {
	// numSplits > 0 is a documented precondition, not a guarded one.
	require.Panics(t, func() {
		DefaultChunksize(10, 0)
	})
}

func TestChunksize_Rows(t *testing.T) {
	s := NewSplitter(WithMinPartitionSize(1))
	tbl := newTestTable(t, 10, 2)

	chunksize, err := s.Chunksize(tbl, 3, AxisRows)
	require.NoError(t, err)
	require.Equal(t, 4, chunksize)
}

func TestChunksize_Columns(t *testing.T) {
	s := NewSplitter(WithMinPartitionSize(1))
	tbl := newTestTable(t, 4, 9)

	chunksize, err := s.Chunksize(tbl, 2, AxisColumns)
	require.NoError(t, err)
	require.Equal(t, 5, chunksize)
}

func TestChunksize_FloorDominates(t *testing.T) {
	// basic chunksize would be 2, but the floor of 20 overrides it.
	s := NewSplitter(WithMinPartitionSize(20))
	tbl := newTestTable(t, 10, 1)

	chunksize, err := s.Chunksize(tbl, 5, AxisRows)
	require.NoError(t, err)
	require.Equal(t, 20, chunksize)
}

func TestChunksize_BlockSizeOverride(t *testing.T) {
	// The per-call override takes precedence over the splitter's floor.
	s := NewSplitter(WithMinPartitionSize(1))
	tbl := newTestTable(t, 10, 1)

	chunksize, err := s.Chunksize(tbl, 5, AxisRows, WithBlockSize(20))
	require.NoError(t, err)
	require.Equal(t, 20, chunksize)
}

func TestChunksize_AlwaysAtLeastOne(t *testing.T) {
	s := NewSplitter(WithMinPartitionSize(1))
	tbl := newTestTable(t, 0, 0)

	chunksize, err := s.Chunksize(tbl, 7, AxisRows)
	require.NoError(t, err)
	require.Equal(t, 1, chunksize)
}

func TestChunksize_FloorInvariant(t *testing.T) {
	// Balanced chunksize is always >= 1 and >= the effective floor.
	tbl := newTestTable(t, 17, 5)
	for _, floor := range []int{1, 2, 8, 64} {
		s := NewSplitter(WithMinPartitionSize(floor))
		for numSplits := 1; numSplits <= 10; numSplits++ {
			for _, axis := range []types.Axis{AxisRows, AxisColumns} {
				chunksize, err := s.Chunksize(tbl, numSplits, axis)
				require.NoError(t, err)
				require.GreaterOrEqual(t, chunksize, 1)
				require.GreaterOrEqual(t, chunksize, floor)
			}
		}
	}
}

func TestChunksize_InvalidAxis(t *testing.T) {
	s := NewSplitter()
	tbl := newTestTable(t, 4, 4)

	_, err := s.Chunksize(tbl, 2, AxisBoth)
	require.ErrorIs(t, err, ErrInvalidAxis)

	_, err = s.Chunksize(tbl, 2, types.Axis(42))
	require.ErrorIs(t, err, ErrInvalidAxis)
}

func TestChunksize_NilFrame(t *testing.T) {
	s := NewSplitter()

	_, err := s.Chunksize(nil, 2, AxisRows)
	require.ErrorIs(t, err, ErrNilFrame)
}

func TestChunksizes_BothAxes(t *testing.T) {
	s := NewSplitter(WithMinPartitionSize(1))
	tbl := newTestTable(t, 10, 7)

	rows, cols, err := s.Chunksizes(tbl, 3)
	require.NoError(t, err)
	require.Equal(t, 4, rows)
	require.Equal(t, 3, cols)
}

func TestChunksizes_SharedFloor(t *testing.T) {
	s := NewSplitter(WithMinPartitionSize(6))
	tbl := newTestTable(t, 10, 2)

	rows, cols, err := s.Chunksizes(tbl, 4)
	require.NoError(t, err)
	require.Equal(t, 6, rows) // ceil(10/4)=3 < floor
	require.Equal(t, 6, cols) // ceil(2/4)=1 < floor
}

func TestChunksizes_NilFrame(t *testing.T) {
	s := NewSplitter()

	_, _, err := s.Chunksizes(nil, 2)
	require.ErrorIs(t, err, ErrNilFrame)
}

func TestChunksize_FloorProvider(t *testing.T) {
	// The provider is consulted on every call, so reconfiguration between
	// calls is observed without rebuilding the splitter.
	floor := 2
	s := NewSplitter(WithFloorProvider(func() int { return floor }))
	tbl := newTestTable(t, 10, 1)

	chunksize, err := s.Chunksize(tbl, 5, AxisRows)
	require.NoError(t, err)
	require.Equal(t, 2, chunksize)

	floor = 30
	chunksize, err = s.Chunksize(tbl, 5, AxisRows)
	require.NoError(t, err)
	require.Equal(t, 30, chunksize)
}

func BenchmarkChunksize(b *testing.B) {
	s := NewSplitter(WithMinPartitionSize(1), WithLogger(nopLogger{}))
	tbl, err := frame.NewTable([]string{"a"}, [][]any{make([]any, 100000)})
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		_, _ = s.Chunksize(tbl, 16, AxisRows)
	}
}

// nopLogger silences benchmark output.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
