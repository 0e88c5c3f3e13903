package prog

import "sort"

// ByteRange is an inclusive [Lo, Hi] byte range.
type ByteRange struct {
	Lo, Hi byte
}

// ByteClass is a sorted, disjoint set of byte ranges — the payload of a
// ByteClass instruction (e.g. a compiled character class like [a-zA-Z0-9]).
// Ranges are kept sorted and non-overlapping so Contains can binary search.
type ByteClass struct {
	ranges []ByteRange
}

// NewByteClass builds a ByteClass from the given ranges, sorting them by
// lower bound. The caller is responsible for ensuring the ranges are
// disjoint; the compiler collaborator that produces them owns that
// invariant.
func NewByteClass(ranges []ByteRange) *ByteClass {
	sorted := make([]ByteRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })
	return &ByteClass{ranges: sorted}
}

// Contains reports whether b falls in one of the class's ranges, in
// O(log R) where R is the number of ranges.
func (c *ByteClass) Contains(b byte) bool {
	// Find the first range whose Hi >= b; check whether b also >= its Lo.
	i := sort.Search(len(c.ranges), func(i int) bool { return c.ranges[i].Hi >= b })
	return i < len(c.ranges) && c.ranges[i].Lo <= b
}

// Ranges returns the class's underlying sorted range list.
func (c *ByteClass) Ranges() []ByteRange {
	return c.ranges
}
