package nfa

import (
	"github.com/vmregex/core/bitset"
	"github.com/vmregex/core/input"
	"github.com/vmregex/core/prog"
)

// Sim is a Thompson NFA simulator bound to a single compiled Program. It
// tracks one generation of active pcs at a time (no per-thread state beyond
// the shared capture-slot vector), stepping them forward one input byte per
// call to Step, whatever the Input's Kind.
//
// A Sim is reusable across searches: Execute resets all mutable state at the
// start of every call, so allocating one Sim per Program (rather than per
// search) avoids repeated allocation of its scratch buffers.
type Sim struct {
	prog    *prog.Program
	threads *bitset.ThreadSet
	visited *bitset.BitSet // scratch for AddClosureFrom, cleared before each use
	slots   []int          // nil until SetSlots is called

	matchStart    int
	matchStartSet bool
	matchEnd      int
	matchEndSet   bool
}

// New constructs a Sim bound to p.
func New(p *prog.Program) *Sim {
	return &Sim{
		prog:    p,
		threads: bitset.NewThreadSet(p.Len()),
		visited: bitset.New(p.Len()),
	}
}

// SetSlots binds a capture-slot vector of length p.SlotCount for subsequent
// searches to write into. Pass nil to stop tracking captures.
func (s *Sim) SetSlots(slots []int) {
	s.slots = slots
}

func (s *Sim) reset() {
	s.threads.Clear()
	s.visited.Clear()
	s.matchStart, s.matchStartSet = 0, false
	s.matchEnd, s.matchEndSet = 0, false
}

// closureInto runs AddClosureFrom from pc into dst, recording a match end
// position at in.Pos() if pc's closure reaches Match.
func (s *Sim) closureInto(in *input.Input, pc prog.PC, dst *bitset.BitSet) {
	s.visited.Clear()
	if AddClosureFrom(s.prog, in, pc, s.visited, dst, s.slots) {
		s.matchEnd, s.matchEndSet = in.Pos(), true
	}
}

// recomputeClosure re-closes every pc currently in threads.Current() in
// place, without consuming an input byte. This is step 6 of Step and also the
// final pass Execute runs after the stepping loop ends, so that end-of-input
// assertions ($, \b at the end of the haystack) still fire.
func (s *Sim) recomputeClosure(in *input.Input) {
	s.threads.CopyToTemp()
	s.threads.Current().Clear()
	temp := s.threads.Temp()
	for pc, ok := temp.FirstSet(); ok; pc, ok = temp.NextSet(pc) {
		s.closureInto(in, prog.PC(pc), s.threads.Current())
	}
}

// Step advances the simulation by one input byte, per spec §4.D:
//
//  1. If current is empty, report false (nothing left to do).
//  2. Prepare next.
//  3. Read the current input byte; if input is consumed, switch to next
//     (which is empty) and report false.
//  4. For each pc in current (ascending), if its instruction is a consuming
//     kind that matches the byte, add its Out to next.
//  5. Switch to next and advance the input by one byte.
//  6. Recompute the epsilon closure over the new current generation.
//
// Returns whether current is nonempty after the step.
func (s *Sim) Step(in *input.Input) bool {
	if s.threads.Current().IsEmpty() {
		return false
	}
	s.threads.PrepareNext()

	b, ok := in.CurrentByte()
	if !ok {
		s.threads.SwitchToNext()
		return false
	}

	current := s.threads.Current()
	for pc, has := current.FirstSet(); has; pc, has = current.NextSet(pc) {
		inst := s.prog.Inst(prog.PC(pc))
		if inst.IsConsuming() && inst.Matches(s.prog, b) {
			s.threads.AddToNext(int(inst.Out))
		}
	}

	s.threads.SwitchToNext()
	in.AdvanceByte()
	s.recomputeClosure(in)

	return !s.threads.Current().IsEmpty()
}

// Execute runs one anchored search attempt: starting from startPC at in's
// current position, it seeds the initial closure, steps forward one input
// byte at a time while threads remain alive, then runs one final closure
// recomputation so end-of-input assertions can fire. Returns whether any
// Match instruction was ever reached.
func (s *Sim) Execute(in *input.Input, startPC prog.PC) (matched bool, err *Error) {
	defer func() {
		if r := recover(); r != nil {
			matched = false
			err = &Error{Kind: OutOfMemory, Message: "nfa: recovered from panic during execution"}
		}
	}()

	s.reset()
	s.closureInto(in, startPC, s.threads.Current())
	if !s.threads.Current().IsEmpty() {
		s.matchStart, s.matchStartSet = in.Pos(), true
	}

	for !in.IsConsumed() && !s.threads.Current().IsEmpty() {
		s.Step(in)
	}

	if !s.threads.Current().IsEmpty() {
		s.recomputeClosure(in)
	}

	return s.matchEndSet, nil
}

// Result returns the match bounds recorded by the most recent Execute call.
// ok is false if no match was found.
func (s *Sim) Result() (start, end int, ok bool) {
	if !s.matchStartSet || !s.matchEndSet {
		return 0, 0, false
	}
	return s.matchStart, s.matchEnd, true
}
