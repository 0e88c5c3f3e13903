package nfa

import (
	"github.com/vmregex/core/bitset"
	"github.com/vmregex/core/input"
	"github.com/vmregex/core/prog"
)

// AddClosureFrom runs a depth-first epsilon closure from pc, guarded by
// visited (which the caller clears before the call), and ORs every pc the DFS
// touches into dst. It is shared by the NFA simulator and the lazy DFA
// builder: in is nil when the DFA computes a closure outside of any input
// position, in which case EmptyMatch assertions are treated as unsatisfied.
//
// Split's two branches are explored in priority order — out (greedy) fully
// before alt (non-greedy) — so that when both branches can reach the same pc,
// the higher-priority path's Save writes win and the lower-priority path is
// cut off by the visited guard. slots may be nil to skip capture tracking.
//
// Returns whether a Match instruction was reached.
func AddClosureFrom(p *prog.Program, in *input.Input, pc prog.PC, visited, dst *bitset.BitSet, slots []int) bool {
	matched := closureDFS(p, in, pc, visited, slots)
	for i, ok := visited.FirstSet(); ok; i, ok = visited.NextSet(i) {
		dst.Set(i)
	}
	return matched
}

func closureDFS(p *prog.Program, in *input.Input, pc prog.PC, visited *bitset.BitSet, slots []int) bool {
	if visited.Get(int(pc)) {
		return false
	}
	visited.Set(int(pc))

	inst := p.Inst(pc)
	switch inst.Kind {
	case prog.KindSplit:
		out := closureDFS(p, in, inst.Out, visited, slots)
		alt := closureDFS(p, in, inst.Alt, visited, slots)
		return out || alt
	case prog.KindJump:
		return closureDFS(p, in, inst.Out, visited, slots)
	case prog.KindSave:
		if slots != nil && in != nil && int(inst.Slot) < len(slots) {
			slots[inst.Slot] = in.Pos()
		}
		return closureDFS(p, in, inst.Out, visited, slots)
	case prog.KindEmptyMatch:
		if in != nil && in.IsEmptyMatch(inst.Assertion) {
			return closureDFS(p, in, inst.Out, visited, slots)
		}
		return false
	case prog.KindMatch:
		return true
	case prog.KindChar, prog.KindByteClass, prog.KindAnyCharNotNL:
		return false
	default:
		return false
	}
}
