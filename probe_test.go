package framesplit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tabular/framesplit/frame"
)

func TestLength(t *testing.T) {
	tbl := newTestTable(t, 7, 2)

	n, err := Length(tbl)
	require.NoError(t, err)
	require.Equal(t, 7, n)
}

func TestLength_EmptyTableReturnsZero(t *testing.T) {
	tbl, err := frame.NewTable([]string{"a"}, [][]any{{}})
	require.NoError(t, err)

	n, err := Length(tbl)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestLength_RejectsColumnVector(t *testing.T) {
	col := frame.NewColumn("v", []any{1, 2, 3})

	_, err := Length(col)
	require.ErrorIs(t, err, ErrNotTable)
}

func TestLength_RejectsNil(t *testing.T) {
	_, err := Length(nil)
	require.ErrorIs(t, err, ErrNotTable)
}

func TestWidth(t *testing.T) {
	tbl := newTestTable(t, 3, 5)

	n, err := Width(tbl)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestWidth_EmptyTableReturnsZero(t *testing.T) {
	tbl := frame.Empty()

	n, err := Width(tbl)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestWidth_RejectsColumnVector(t *testing.T) {
	col := frame.NewColumn("v", []any{1})

	_, err := Width(col)
	require.ErrorIs(t, err, ErrNotTable)
}

func TestWidth_RejectsNil(t *testing.T) {
	_, err := Width(nil)
	require.ErrorIs(t, err, ErrNotTable)
}

func TestProbes_MeasureSplitterOutput(t *testing.T) {
	// The probes are how an owning engine measures produced partitions.
	s := NewSplitter(WithMinPartitionSize(1))
	tbl := newTestTable(t, 10, 4)

	parts, err := s.Split(AxisRows, 3, tbl)
	require.NoError(t, err)

	total := 0
	for _, p := range parts {
		n, err := Length(p)
		require.NoError(t, err)
		total += n

		w, err := Width(p)
		require.NoError(t, err)
		require.Equal(t, 4, w)
	}
	require.Equal(t, 10, total)
}
