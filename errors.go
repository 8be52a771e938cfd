package framesplit

import "github.com/go-tabular/framesplit/types"

// Sentinel errors re-exported from the types subpackage so callers can use
// errors.Is against either package. These are the same error values, not
// copies.
var (
	// ErrNilFrame is returned when a nil frame is supplied.
	ErrNilFrame = types.ErrNilFrame

	// ErrInvalidAxis is returned when an operation receives an axis it does
	// not support.
	ErrInvalidAxis = types.ErrInvalidAxis

	// ErrInvalidSplitCount is returned when the requested number of splits
	// is less than one.
	ErrInvalidSplitCount = types.ErrInvalidSplitCount

	// ErrLengthMismatch is returned when an explicit length list contains a
	// negative entry or does not sum to the length of the axis being split.
	ErrLengthMismatch = types.ErrLengthMismatch

	// ErrNotTable is returned by the dimension probes for values that are
	// not full tables.
	ErrNotTable = types.ErrNotTable

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidMinPartitionSize is returned when a minimum partition size
	// below 1 is supplied.
	ErrInvalidMinPartitionSize = types.ErrInvalidMinPartitionSize
)
