// Package arrowframe adapts Apache Arrow data to the types.Frame interface.
//
// Two adapters:
//
//   - Record: wraps an arrow.Record as a full table
//   - Column: wraps an arrow.Array as a single-column vector
//
// Slicing uses Arrow's zero-copy slice machinery (Record.NewSlice and
// array.NewSlice), so partitions share buffers with the parent. The adapters
// do not retain or release references; lifetime management of the underlying
// Arrow data stays with the caller, matching the library's rule that frames
// are owned by the caller and only read here.
package arrowframe
