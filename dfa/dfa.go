package dfa

import (
	"fmt"

	"github.com/vmregex/core/bitset"
	"github.com/vmregex/core/input"
	"github.com/vmregex/core/internal/conv"
	"github.com/vmregex/core/nfa"
	"github.com/vmregex/core/prog"
)

// deadStateKey is a sentinel distinguishing "this classID transitions to
// DeadState" from "not computed yet" in a State's Transitions memo. A real
// FNV-1a hash landing on exactly 0 is negligible.
const deadStateKey StateKey = 0

// DFA is a lazy (on-the-fly) determinization of a Program: states are
// powersets of NFA program counters, built and cached only as a search
// actually visits them, per spec §4.F. It only ever sees assertion-free
// programs — any EmptyMatch instruction must be handled by the NFA simulator
// instead, since determinization here never threads input position through
// closure computation (nfa.AddClosureFrom is called with a nil *input.Input).
type DFA struct {
	prog       *prog.Program
	classifier *prog.Classifier
	cache      *Cache
	config     Config
	deadState  *State

	visited *bitset.BitSet
	merge   *bitset.BitSet

	statesBuilt int
	// searchBase is statesBuilt as it stood when the current Execute call
	// began; MaxConstructionStates bounds statesBuilt-searchBase.
	searchBase int

	statsTransitionsComputed uint64
}

// New builds a DFA over p using config. It returns an InvalidConfig error if
// config fails validation.
func New(p *prog.Program, config Config) (*DFA, error) {
	if err := config.Validate(); err != nil {
		return nil, &Error{Kind: InvalidConfig, Message: "dfa: invalid configuration", Cause: err}
	}
	return &DFA{
		prog:       p,
		classifier: prog.BuildClassifier(p),
		cache:      NewCache(config.CacheCapacity),
		config:     config,
		deadState:  newState(DeadState, nil, false),
		visited:    bitset.New(p.Len()),
		merge:      bitset.New(p.Len()),
	}, nil
}

// Initialize builds (or fetches, if already cached) the start state reached
// by closing over startPC, without consuming any input. It is exposed
// separately from Execute so a caller can warm the cache for a known entry
// point ahead of time.
func (d *DFA) Initialize(startPC prog.PC) (StateID, error) {
	st, _, err := d.closeStates([]prog.PC{startPC})
	if err != nil {
		return InvalidState, err
	}
	return st.ID, nil
}

// ComputeTransition returns the state reached from state on class id classID,
// building and caching it first if this is the first time the pair has been
// seen (or if the previously memoized target has since been evicted). Per
// spec §4.F:
//
//  1. Gather the consuming-instruction successors of state.NFAPCs whose
//     instruction matches a representative byte of classID.
//  2. Epsilon-close each successor into a merge bit-vector.
//  3. Hash the sorted result and look it up in the cache (inserting on miss,
//     subject to MaxConstructionStates).
func (d *DFA) ComputeTransition(state *State, classID byte) (*State, error) {
	if state.ID == DeadState {
		return d.deadState, nil
	}
	if key, ok := state.Transitions[classID]; ok {
		if key == deadStateKey {
			return d.deadState, nil
		}
		if st, ok2 := d.cache.Get(key); ok2 {
			return st, nil
		}
		// Target was evicted; fall through and rebuild it.
	}

	d.statsTransitionsComputed++
	rep := d.classifier.Representative(classID)

	var seeds []prog.PC
	for _, raw := range state.NFAPCs {
		pc := prog.PC(raw)
		inst := d.prog.Inst(pc)
		if inst.IsConsuming() && inst.Matches(d.prog, rep) {
			seeds = append(seeds, inst.Out)
		}
	}

	target, key, err := d.closeStates(seeds)
	if err != nil {
		return nil, err
	}
	state.Transitions[classID] = key
	return target, nil
}

// closeStates epsilon-closes every seed pc into a fresh merge set and interns
// the resulting state (or DeadState, if the merge is empty).
func (d *DFA) closeStates(seeds []prog.PC) (*State, StateKey, error) {
	d.merge.Clear()
	for _, pc := range seeds {
		d.visited.Clear()
		nfa.AddClosureFrom(d.prog, nil, pc, d.visited, d.merge, nil)
	}
	return d.internState()
}

func (d *DFA) internState() (*State, StateKey, error) {
	if d.merge.IsEmpty() {
		return d.deadState, deadStateKey, nil
	}

	pcs := d.collectMergePCs()
	key := computeStateKey(pcs)

	if st, ok := d.cache.Get(key); ok {
		return st, key, nil
	}
	if d.statesBuilt-d.searchBase >= d.config.MaxConstructionStates {
		return nil, 0, &Error{
			Kind:    TooManyStates,
			Message: fmt.Sprintf("dfa: exceeded MaxConstructionStates (%d)", d.config.MaxConstructionStates),
		}
	}
	d.statesBuilt++

	isMatch := d.stateIsMatch(pcs)
	st, _ := d.cache.GetOrInsert(key, func(StateID) ([]uint32, bool) {
		return pcs, isMatch
	})
	return st, key, nil
}

// collectMergePCs reads d.merge in ascending order; BitSet iteration is
// already sorted, so no separate sort step is needed before hashing.
func (d *DFA) collectMergePCs() []uint32 {
	var pcs []uint32
	for i, ok := d.merge.FirstSet(); ok; i, ok = d.merge.NextSet(i) {
		pcs = append(pcs, conv.IntToUint32(i))
	}
	return pcs
}

func (d *DFA) stateIsMatch(pcs []uint32) bool {
	for _, raw := range pcs {
		if d.prog.Inst(prog.PC(raw)).Kind == prog.KindMatch {
			return true
		}
	}
	return false
}

// Execute runs one anchored search attempt starting at startPC, stepping one
// byte at a time via ComputeTransition until input is exhausted or the
// search reaches DeadState. Returns whether the search ever passed through a
// matching state, and the position of the last such state (the greedy match
// end), mirroring nfa.Sim.Execute's contract.
func (d *DFA) Execute(in *input.Input, startPC prog.PC) (matched bool, matchEnd int, err *Error) {
	d.searchBase = d.statesBuilt
	start, _, buildErr := d.closeStates([]prog.PC{startPC})
	if buildErr != nil {
		e := buildErr.(*Error)
		return false, 0, e
	}

	current := start
	if current.IsMatch {
		matched = true
		matchEnd = in.Pos()
	}

	for current.ID != DeadState {
		b, ok := in.CurrentByte()
		if !ok {
			break
		}
		classID := d.classifier.ClassOf(b)

		next, tErr := d.ComputeTransition(current, classID)
		if tErr != nil {
			e := tErr.(*Error)
			return matched, matchEnd, e
		}
		in.AdvanceByte()
		current = next

		if current.IsMatch {
			matched = true
			matchEnd = in.Pos()
		}
	}

	return matched, matchEnd, nil
}

// ExecStats is a point-in-time snapshot of this DFA's construction activity.
type ExecStats struct {
	StatesCreated       int
	TransitionsComputed uint64
	Cache               Stats
}

// Stats returns a snapshot of construction and cache activity.
func (d *DFA) Stats() ExecStats {
	return ExecStats{
		StatesCreated:       d.statesBuilt,
		TransitionsComputed: d.statsTransitionsComputed,
		Cache:               d.cache.Stats(),
	}
}
