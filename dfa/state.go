package dfa

import "hash/fnv"

// StateID identifies a DFA state within a single DFA's cache. IDs are only
// stable for as long as the underlying State stays resident in the cache;
// once evicted, the same content is free to be assigned a new StateID the
// next time it's built.
type StateID uint32

// DeadState is the permanent sink: it has no outgoing progress and never
// matches. Every transition out of it loops back to itself, so a search that
// reaches it can stop without consulting the cache again.
const DeadState StateID = 0

// InvalidState marks the absence of a state, e.g. returned alongside a
// construction error.
const InvalidState StateID = 0xFFFFFFFF

// reservedIDs is the number of StateID values DeadState and friends occupy
// before the cache starts minting real state IDs.
const reservedIDs = 1

// State is one lazily-constructed DFA state: a powerset of NFA program
// counters reached by closing over a predecessor state's consuming
// successors, plus the per-class-id transition table built for it so far.
type State struct {
	ID StateID

	// NFAPCs is the sorted, deduplicated set of NFA program counters this
	// state represents. Two states with the same NFAPCs are the same state
	// and share a cache entry, regardless of how they were reached.
	NFAPCs []uint32

	IsMatch bool

	// Transitions memoizes classID -> target state content key, populated on
	// first use by ComputeTransition. A missing entry means "not computed
	// yet", not "no transition" (spec §4.F: determinization is strictly
	// on-demand).
	Transitions map[byte]StateKey
}

func newState(id StateID, pcs []uint32, isMatch bool) *State {
	return &State{
		ID:          id,
		NFAPCs:      pcs,
		IsMatch:     isMatch,
		Transitions: make(map[byte]StateKey),
	}
}

// StateKey is a content-addressed identity for a State: two States built
// from the same sorted NFAPCs (and the same match-ness, which is itself a
// deterministic function of NFAPCs) always hash to the same StateKey.
type StateKey uint64

// computeStateKey hashes a sorted, deduplicated pc-set with FNV-1a. pcs must
// already be sorted; the hash is over byte-serialized uint32s so that
// ordering (not just membership) determines identity, which costs nothing
// extra because the caller reads the pc-set in ascending BitSet order.
func computeStateKey(pcs []uint32) StateKey {
	h := fnv.New64a()
	var buf [4]byte
	for _, pc := range pcs {
		buf[0] = byte(pc)
		buf[1] = byte(pc >> 8)
		buf[2] = byte(pc >> 16)
		buf[3] = byte(pc >> 24)
		h.Write(buf[:])
	}
	return StateKey(h.Sum64())
}
