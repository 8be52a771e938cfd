package types

import "errors"

// Sentinel errors for the framesplit library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Splitter errors - returned by the Split, Spans, and Chunksize operations.
var (
	// ErrNilFrame is returned when a nil frame is supplied.
	ErrNilFrame = errors.New("frame is required")

	// ErrInvalidAxis is returned when an operation receives an axis it does
	// not support. Splitting accepts rows or columns only; AxisBoth is valid
	// solely for chunksize computation.
	ErrInvalidAxis = errors.New("invalid axis for operation")

	// ErrInvalidSplitCount is returned when the requested number of splits
	// is less than one.
	ErrInvalidSplitCount = errors.New("split count must be at least 1")

	// ErrLengthMismatch is returned when an explicit length list contains a
	// negative entry or does not sum to the length of the axis being split.
	ErrLengthMismatch = errors.New("length list does not match axis length")
)

// Probe errors - returned by the strict dimension probes.
var (
	// ErrNotTable is returned when a dimension probe receives a value that is
	// not a full table (e.g. a single-column vector or a nil frame). The
	// probes are deliberately stricter than the splitter, which accepts
	// column vectors and forces the row axis for them.
	ErrNotTable = errors.New("value is not a table")
)

// Configuration errors.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidMinPartitionSize is returned when a minimum partition size
	// below 1 is supplied.
	ErrInvalidMinPartitionSize = errors.New("minimum partition size must be at least 1")
)
