// Package bitset provides a dense, fixed-capacity set of nonnegative integers
// packed into machine words.
//
// A BitSet is the primitive the NFA simulator and the lazy DFA builder share
// for tracking instruction indices (program counters): both need a structure
// that supports O(1) set/get, ascending-order iteration, and cheap cloning
// without the per-element bookkeeping a map or a sparse-array pair would add.
package bitset

import "math/bits"

const wordBits = 64

// BitSet is a fixed-capacity set of nonnegative integers in [0, n), stored as
// packed 64-bit words.
type BitSet struct {
	words []uint64
	n     int
}

// New returns a BitSet with capacity for n elements, all cleared.
func New(n int) *BitSet {
	if n < 0 {
		n = 0
	}
	return &BitSet{
		words: make([]uint64, (n+wordBits-1)/wordBits),
		n:     n,
	}
}

// Len returns the capacity the set was constructed with.
func (b *BitSet) Len() int {
	return b.n
}

// Set adds i to the set.
func (b *BitSet) Set(i int) {
	b.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Get reports whether i is a member of the set.
func (b *BitSet) Get(i int) bool {
	return b.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// ClearBit removes i from the set.
func (b *BitSet) ClearBit(i int) {
	b.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Clear resets every word to zero in O(n/word) time.
func (b *BitSet) Clear() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Clone allocates a new BitSet and copies the underlying words into it.
func (b *BitSet) Clone() *BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &BitSet{words: words, n: b.n}
}

// CopyFrom overwrites b's words with src's. Both must have the same capacity.
func (b *BitSet) CopyFrom(src *BitSet) {
	copy(b.words, src.words)
}

// FirstSet returns the smallest set element, or (-1, false) if the set is
// empty.
func (b *BitSet) FirstSet() (int, bool) {
	return b.NextSet(-1)
}

// NextSet returns the smallest set element strictly greater than after, or
// (-1, false) if none exists. Passing after = -1 finds the first element.
//
// Iteration in ascending order looks like:
//
//	for i, ok := b.FirstSet(); ok; i, ok = b.NextSet(i) { ... }
func (b *BitSet) NextSet(after int) (int, bool) {
	start := after + 1
	if start < 0 {
		start = 0
	}
	wordIdx := start / wordBits
	if wordIdx >= len(b.words) {
		return -1, false
	}

	// Mask off bits below `start` (i.e. at or before `after`) in the first word.
	bit := uint(start % wordBits)
	w := b.words[wordIdx] &^ ((uint64(1) << bit) - 1)

	for {
		if w != 0 {
			pos := wordIdx*wordBits + bits.TrailingZeros64(w)
			if pos >= b.n {
				return -1, false
			}
			return pos, true
		}
		wordIdx++
		if wordIdx >= len(b.words) {
			return -1, false
		}
		w = b.words[wordIdx]
	}
}

// Bits returns the raw packed words backing the set. The returned slice
// aliases internal storage and must not be retained across a Clear/Set call.
func (b *BitSet) Bits() []uint64 {
	return b.words
}

// IsEmpty reports whether the set has no members.
func (b *BitSet) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}
