package arrowframe_test

import (
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/require"

	"github.com/go-tabular/framesplit"
	"github.com/go-tabular/framesplit/arrowframe"
)

// Splitting an Arrow record goes through the same balanced layout as the
// in-memory frames.
func TestSplitArrowRecord(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
	}, nil)

	b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer b.Release()
	ids := make([]int64, 10)
	for i := range ids {
		ids[i] = int64(i)
	}
	b.Field(0).(*array.Int64Builder).AppendValues(ids, nil)
	rec := b.NewRecord()
	t.Cleanup(rec.Release)

	s := framesplit.NewSplitter(framesplit.WithMinPartitionSize(1))
	parts, err := s.Split(framesplit.AxisRows, 3, arrowframe.New(rec))
	require.NoError(t, err)
	require.Len(t, parts, 3)

	var got []int64
	for _, p := range parts {
		r, ok := p.(*arrowframe.Record)
		require.True(t, ok)
		col, ok := r.Underlying().Column(0).(*array.Int64)
		require.True(t, ok)
		got = append(got, col.Int64Values()...)
	}
	require.Equal(t, ids, got)
	require.Equal(t, 4, parts[0].NumRows())
	require.Equal(t, 4, parts[1].NumRows())
	require.Equal(t, 2, parts[2].NumRows())
}
