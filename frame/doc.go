// Package frame provides built-in in-memory implementations of types.Frame.
//
// Two implementations:
//
//   - Table: Column-oriented full table with named columns
//   - Column: Single-column vector, always split along the row axis
//
// Both are view-based: slicing shares the underlying storage with the parent,
// so splitting a large table allocates only slice headers. Mutating the data
// behind a produced view is the caller's responsibility to avoid.
//
// Arrow-backed implementations live in the arrowframe package; custom ones
// only need to satisfy the types.Frame interface.
package frame
