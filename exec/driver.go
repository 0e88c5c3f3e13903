// Package exec is the execution driver (spec §4.G): given a compiled
// Program, it decides whether a search should run on the lazy DFA or the
// NFA simulator and exposes a single entry point over both.
package exec

import (
	"github.com/vmregex/core/dfa"
	"github.com/vmregex/core/input"
	"github.com/vmregex/core/nfa"
	"github.com/vmregex/core/prog"
)

// Driver dispatches searches over a single Program to whichever engine can
// serve them. The lazy DFA only ever sees assertion-free programs: it closes
// over NFA program counters with no input position in scope (see
// dfa.DFA's doc comment), so a Program containing any EmptyMatch instruction
// must run on the NFA simulator, and so must any search that wants capture
// positions (the DFA does not track Save writes).
type Driver struct {
	prog          *prog.Program
	hasAssertions bool

	sim *nfa.Sim
	dfa *dfa.DFA
}

// New builds a Driver over p, constructing both engines up front.
func New(p *prog.Program, dfaConfig dfa.Config) (*Driver, error) {
	d, err := dfa.New(p, dfaConfig)
	if err != nil {
		return nil, err
	}
	return &Driver{
		prog:          p,
		hasAssertions: programHasAssertions(p),
		sim:           nfa.New(p),
		dfa:           d,
	}, nil
}

func programHasAssertions(p *prog.Program) bool {
	for _, inst := range p.Insts {
		if inst.Kind == prog.KindEmptyMatch {
			return true
		}
	}
	return false
}

// Result reports the outcome of a single search. Start is -1 when the engine
// that ran the search doesn't track it (the DFA-only boolean/position path);
// Slots is nil unless WantCaptures was set and the engine supports it.
type Result struct {
	Matched    bool
	Start, End int
	Slots      []int
}

// Search runs one search over in, starting at the Program's anchored entry
// point if anchored is true, or its unanchored find_start prelude otherwise.
// wantCaptures requests the capture-slot vector, which forces NFA execution.
//
// A DFA search that exceeds its construction budget (dfa.TooManyStates) is
// retried on the NFA simulator per spec §7's recoverable-error contract,
// rather than surfaced to the caller.
func (d *Driver) Search(in *input.Input, anchored, wantCaptures bool) (Result, error) {
	startPC := d.prog.FindStart
	if anchored {
		startPC = d.prog.Start
	}

	if wantCaptures || d.hasAssertions {
		return d.searchNFA(in, startPC, wantCaptures)
	}

	origin := in.Pos()
	matched, end, err := d.dfa.Execute(in, startPC)
	if err != nil {
		if err.Kind == dfa.TooManyStates {
			in.SetPos(origin)
			return d.searchNFA(in, startPC, wantCaptures)
		}
		return Result{}, err
	}
	if !matched {
		return Result{Matched: false, Start: -1, End: -1}, nil
	}
	return Result{Matched: true, Start: -1, End: end}, nil
}

func (d *Driver) searchNFA(in *input.Input, startPC prog.PC, wantCaptures bool) (Result, error) {
	var slots []int
	if wantCaptures && d.prog.SlotCount > 0 {
		slots = make([]int, d.prog.SlotCount)
		for i := range slots {
			slots[i] = -1
		}
	}
	d.sim.SetSlots(slots)

	matched, err := d.sim.Execute(in, startPC)
	if err != nil {
		return Result{}, err
	}
	if !matched {
		return Result{Matched: false, Start: -1, End: -1}, nil
	}

	start, end, ok := d.sim.Result()
	if !ok {
		return Result{Matched: false, Start: -1, End: -1}, nil
	}

	res := Result{Matched: true, Start: start, End: end}
	if wantCaptures {
		res.Slots = slots
	}
	return res, nil
}

// Stats returns the underlying DFA's construction and cache statistics.
func (d *Driver) Stats() dfa.ExecStats {
	return d.dfa.Stats()
}
