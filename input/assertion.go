package input

import "fmt"

// Assertion identifies a zero-width condition an EmptyMatch instruction
// tests against the current input position.
type Assertion uint8

const (
	// BeginLine holds at position 0, or after a '\n' when multiline is set.
	BeginLine Assertion = iota
	// EndLine holds at end of input, or before a '\n' when multiline is set.
	EndLine
	// BeginText holds only at position 0.
	BeginText
	// EndText holds only at the end of input.
	EndText
	// WordBoundaryAscii holds where an ASCII word byte meets a non-word byte.
	WordBoundaryAscii
	// NotWordBoundaryAscii is the negation of WordBoundaryAscii.
	NotWordBoundaryAscii
)

// String returns a human-readable assertion name.
func (a Assertion) String() string {
	switch a {
	case BeginLine:
		return "BeginLine"
	case EndLine:
		return "EndLine"
	case BeginText:
		return "BeginText"
	case EndText:
		return "EndText"
	case WordBoundaryAscii:
		return "WordBoundaryAscii"
	case NotWordBoundaryAscii:
		return "NotWordBoundaryAscii"
	default:
		return fmt.Sprintf("UnknownAssertion(%d)", uint8(a))
	}
}
