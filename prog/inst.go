package prog

import (
	"fmt"

	"github.com/vmregex/core/input"
)

// PC is a program counter: an index into a Program's instruction array.
type PC uint32

// InvalidPC marks the absence of a target (e.g. an unset Split branch).
const InvalidPC PC = 0xFFFFFFFF

// Kind identifies the tagged variant an Instruction carries.
type Kind uint8

const (
	// KindChar matches exactly one byte, advancing one input unit.
	KindChar Kind = iota
	// KindByteClass matches if the current byte falls in a disjoint union
	// of byte ranges.
	KindByteClass
	// KindAnyCharNotNL matches any byte except '\n' (0x0A).
	KindAnyCharNotNL
	// KindEmptyMatch is a zero-width assertion check.
	KindEmptyMatch
	// KindSave records the current input position into a capture slot.
	// Zero-width.
	KindSave
	// KindJump is an unconditional zero-width transfer to Out.
	KindJump
	// KindSplit is a zero-width two-way branch: Out is preferred (greedy),
	// Alt is the secondary branch (non-greedy), per the compiler's encoding.
	KindSplit
	// KindMatch accepts and terminates a thread.
	KindMatch
)

// String returns a human-readable instruction kind name.
func (k Kind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindByteClass:
		return "ByteClass"
	case KindAnyCharNotNL:
		return "AnyCharNotNL"
	case KindEmptyMatch:
		return "EmptyMatch"
	case KindSave:
		return "Save"
	case KindJump:
		return "Jump"
	case KindSplit:
		return "Split"
	case KindMatch:
		return "Match"
	default:
		return fmt.Sprintf("UnknownKind(%d)", uint8(k))
	}
}

// Instruction is a single record (out, data) in a compiled Program: out is
// the primary successor pc for every kind that has one, and data is the
// tagged payload selected by Kind.
//
// Zero-width kinds (everything but Char, ByteClass, AnyCharNotNL) never
// consume input; the simulator only advances the input position when it
// steps over one of those three.
type Instruction struct {
	Kind Kind
	Out  PC

	// Char payload.
	Byte byte

	// ByteClass payload: an index into the owning Program's class table.
	ClassIdx int

	// EmptyMatch payload.
	Assertion input.Assertion

	// Save payload: which capture slot to stamp with the current position.
	Slot uint32

	// Split payload: the secondary (non-greedy) branch. Out is the primary
	// (greedy) branch.
	Alt PC
}

// CharByte returns the literal byte for a KindChar instruction.
func (i Instruction) CharByte() byte { return i.Byte }

// String renders the instruction for debugging.
func (i Instruction) String() string {
	switch i.Kind {
	case KindChar:
		return fmt.Sprintf("Char(%q) -> %d", i.Byte, i.Out)
	case KindByteClass:
		return fmt.Sprintf("ByteClass(#%d) -> %d", i.ClassIdx, i.Out)
	case KindAnyCharNotNL:
		return fmt.Sprintf("AnyCharNotNL -> %d", i.Out)
	case KindEmptyMatch:
		return fmt.Sprintf("EmptyMatch(%s) -> %d", i.Assertion, i.Out)
	case KindSave:
		return fmt.Sprintf("Save(%d) -> %d", i.Slot, i.Out)
	case KindJump:
		return fmt.Sprintf("Jump -> %d", i.Out)
	case KindSplit:
		return fmt.Sprintf("Split -> %d, %d", i.Out, i.Alt)
	case KindMatch:
		return "Match"
	default:
		return fmt.Sprintf("Instruction{Kind: %s}", i.Kind)
	}
}

// IsConsuming reports whether this instruction advances the input position
// when taken (Char, ByteClass, AnyCharNotNL); every other kind is zero-width.
func (i Instruction) IsConsuming() bool {
	switch i.Kind {
	case KindChar, KindByteClass, KindAnyCharNotNL:
		return true
	default:
		return false
	}
}

// Matches reports whether this consuming instruction accepts byte b. It
// panics if called on a zero-width instruction; callers must check
// IsConsuming first (the simulator and DFA builder only ever call this on
// instructions they've already filtered to consuming kinds).
func (i Instruction) Matches(p *Program, b byte) bool {
	switch i.Kind {
	case KindChar:
		return b == i.Byte
	case KindByteClass:
		return p.Classes[i.ClassIdx].Contains(b)
	case KindAnyCharNotNL:
		return b != '\n'
	default:
		panic(fmt.Sprintf("Matches called on zero-width instruction kind %s", i.Kind))
	}
}
