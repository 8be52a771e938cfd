package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAxis_String(t *testing.T) {
	require.Equal(t, "rows", AxisRows.String())
	require.Equal(t, "columns", AxisColumns.String())
	require.Equal(t, "both", AxisBoth.String())
	require.Equal(t, "unknown", Axis(42).String())
}

func TestAxis_Valid(t *testing.T) {
	require.True(t, AxisRows.Valid())
	require.True(t, AxisColumns.Valid())
	require.True(t, AxisBoth.Valid())
	require.False(t, Axis(-1).Valid())
	require.False(t, Axis(3).Valid())
}
