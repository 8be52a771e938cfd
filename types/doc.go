// Package types provides core type definitions and interfaces for the framesplit library.
//
// This package contains shared types that are used across multiple packages in the
// framesplit library. By keeping these types in a separate package, we avoid import
// cycles between the main framesplit package and the built-in Frame implementations.
//
// Key types:
//   - Frame: Two-dimensional table abstraction the splitter operates on
//   - Axis: Row/column dimension selector
//   - Span: Partition geometry (axis, offset, length) with a stable identity
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
