package prog

import "fmt"

// Program is the immutable, compiled form the core consumes. It is built and
// owned by the (out-of-scope) compiler collaborator; the core only promises
// not to mutate it after construction.
//
// slot_count is always even: capture group k's open/close positions live in
// slots 2k and 2k+1, with group 0 encoding the whole match.
type Program struct {
	Insts     []Instruction
	Start     PC // anchored entry point
	FindStart PC // entry to the unanchored `.*?` prelude
	SlotCount int

	// Classes holds the byte-range tables referenced by KindByteClass
	// instructions via Instruction.ClassIdx. The Program exclusively owns
	// this storage.
	Classes []*ByteClass
}

// New validates and constructs a Program from its component parts. It
// returns an error describing the first problem found (an empty instruction
// array, an odd slot count, or an out-of-range index), matching
// the InvalidProgram error kind from spec §7 (construction-time only; the
// compiler is responsible for producing valid input, and this check exists
// so a malformed Program fails fast rather than corrupting a search).
func New(insts []Instruction, start, findStart PC, slotCount int, classes []*ByteClass) (*Program, error) {
	p := &Program{
		Insts:     insts,
		Start:     start,
		FindStart: findStart,
		SlotCount: slotCount,
		Classes:   classes,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Program) validate() error {
	n := PC(len(p.Insts))
	inRange := func(pc PC) bool { return pc < n }

	if n == 0 {
		return fmt.Errorf("invalid program: empty instruction array")
	}
	if !inRange(p.Start) {
		return fmt.Errorf("invalid program: start %d out of range", p.Start)
	}
	if !inRange(p.FindStart) {
		return fmt.Errorf("invalid program: find_start %d out of range", p.FindStart)
	}
	if p.SlotCount%2 != 0 {
		return fmt.Errorf("invalid program: slot_count %d must be even", p.SlotCount)
	}
	for pc, inst := range p.Insts {
		switch inst.Kind {
		case KindSplit:
			if !inRange(inst.Out) {
				return fmt.Errorf("invalid program: inst %d Split.out %d out of range", pc, inst.Out)
			}
			if !inRange(inst.Alt) {
				return fmt.Errorf("invalid program: inst %d Split.alt %d out of range", pc, inst.Alt)
			}
		case KindMatch:
			// terminal, no Out to check
		default:
			if !inRange(inst.Out) {
				return fmt.Errorf("invalid program: inst %d out %d out of range", pc, inst.Out)
			}
		}
		if inst.Kind == KindByteClass && (inst.ClassIdx < 0 || inst.ClassIdx >= len(p.Classes)) {
			return fmt.Errorf("invalid program: inst %d ClassIdx %d out of range", pc, inst.ClassIdx)
		}
	}
	return nil
}

// Inst returns the instruction at pc.
func (p *Program) Inst(pc PC) Instruction {
	return p.Insts[pc]
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.Insts)
}
