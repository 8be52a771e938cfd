package types

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"
)

// Span describes the geometry of one partition: a contiguous half-open range
// [Offset, Offset+Length) along a single axis of some frame.
//
// Spans let an owning engine track partition layout (lengths, offsets) without
// materializing the partitions themselves. A Span produced by Splitter.Spans
// always matches the slice Splitter.Split would produce at the same index.
type Span struct {
	// Axis is the dimension the range applies to (rows or columns).
	Axis Axis `json:"axis"`

	// Offset is the inclusive start of the range along Axis.
	Offset int `json:"offset"`

	// Length is the number of rows or columns covered (may be 0 for
	// partitions past the end of the axis).
	Length int `json:"length"`
}

// End returns the exclusive end of the range.
func (s Span) End() int {
	return s.Offset + s.Length
}

// Key returns a canonical human-readable identifier for the span, suitable
// for map keys and log fields.
//
// Returns:
//   - string: "<axis>:<offset>+<length>", e.g. "rows:40+10"
func (s Span) Key() string {
	return fmt.Sprintf("%s:%d+%d", s.Axis, s.Offset, s.Length)
}

// ID returns a stable 64-bit identity for the span, hashed with xxh3 over the
// axis, offset, and length. Two spans with identical geometry always produce
// the same ID across processes, so engines can use it to key cached partition
// metadata.
func (s Span) ID() uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(s.Axis))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(s.Offset))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(s.Length))

	return xxh3.Hash(buf[:])
}

// Compare orders spans by axis, then offset, then length.
//
// Returns:
//   - int: -1 if s < t, 0 if equal, +1 if s > t
func (s Span) Compare(t Span) int {
	switch {
	case s.Axis != t.Axis:
		if s.Axis < t.Axis {
			return -1
		}

		return 1
	case s.Offset != t.Offset:
		if s.Offset < t.Offset {
			return -1
		}

		return 1
	case s.Length != t.Length:
		if s.Length < t.Length {
			return -1
		}

		return 1
	default:
		return 0
	}
}
