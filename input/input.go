package input

// Kind selects how Input decodes the unit at the current position.
type Kind uint8

const (
	// Bytes treats every byte as its own unit: current() returns the raw
	// byte and advance() moves one byte at a time.
	Bytes Kind = iota
	// Utf8 decodes a codepoint at the current position and advances past
	// its full encoded length.
	Utf8
)

// Input is a view over a byte slice. Current/Advance expose it one unit at a
// time, where a "unit" is a byte (Bytes kind) or a decoded codepoint (Utf8
// kind); the NFA simulator and lazy DFA instead step one byte at a time via
// CurrentByte/AdvanceByte, whatever the Kind.
//
// Input never copies the underlying bytes; it only tracks a position into
// them, so many Inputs (e.g. one per NFA start-attempt in unanchored search)
// can share the same haystack cheaply.
type Input struct {
	bytes     []byte
	pos       int
	kind      Kind
	multiline bool
}

// New constructs an Input over bytes starting at position 0.
func New(bytes []byte, kind Kind, multiline bool) *Input {
	return &Input{bytes: bytes, kind: kind, multiline: multiline}
}

// Pos returns the current byte offset into the haystack.
func (in *Input) Pos() int { return in.pos }

// SetPos repositions the input, e.g. to restart an anchored attempt at a new
// offset without reallocating.
func (in *Input) SetPos(pos int) { in.pos = pos }

// Len returns the length of the underlying haystack in bytes.
func (in *Input) Len() int { return len(in.bytes) }

// Bytes returns the underlying haystack.
func (in *Input) Bytes() []byte { return in.bytes }

// Kind reports whether this Input decodes bytes or codepoints.
func (in *Input) Kind() Kind { return in.kind }

// IsConsumed reports whether the position has reached the end of input.
func (in *Input) IsConsumed() bool {
	return in.pos >= len(in.bytes)
}

// Current returns the unit about to be consumed: a byte value in Bytes kind,
// a decoded codepoint in Utf8 kind. The second return is false at end of
// input. An invalid UTF-8 sequence in Utf8 kind reports ok=true with a null
// (zero) codepoint, per the codec's tolerant-decode contract; Advance still
// moves exactly one byte in that case.
func (in *Input) Current() (rune, bool) {
	if in.IsConsumed() {
		return 0, false
	}
	switch in.kind {
	case Bytes:
		return rune(in.bytes[in.pos]), true
	default: // Utf8
		cp, _, err := Decode(in.bytes[in.pos:])
		if err != nil {
			return 0, true
		}
		return cp, true
	}
}

// Advance moves past the current unit. It is a no-op at end of input.
func (in *Input) Advance() {
	if in.IsConsumed() {
		return
	}
	switch in.kind {
	case Bytes:
		in.pos++
	default: // Utf8
		_, n, err := Decode(in.bytes[in.pos:])
		if err != nil {
			in.pos++
			return
		}
		in.pos += n
	}
}

// CurrentByte returns the raw byte at the current position, regardless of
// Kind. The NFA simulator and lazy DFA step byte-by-byte unconditionally: a
// Program's Char/ByteClass/AnyCharNotNL instructions are always byte-level
// (component C), even for a Utf8-kind Input whose compiled program expresses
// codepoint matching as a chain of per-byte instructions. Current/Advance's
// codepoint decoding exists for callers that need the unit boundary itself
// (e.g. reporting match offsets aligned to codepoints), not for the engines.
func (in *Input) CurrentByte() (byte, bool) {
	if in.IsConsumed() {
		return 0, false
	}
	return in.bytes[in.pos], true
}

// AdvanceByte moves the position forward by exactly one byte. It is a no-op
// at end of input.
func (in *Input) AdvanceByte() {
	if in.IsConsumed() {
		return
	}
	in.pos++
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

// IsCurrentWordChar reports whether the byte at the current position is an
// ASCII word byte ([0-9A-Za-z_]). Word-boundary assertions are ASCII-scoped
// by name, so this never decodes a codepoint even in Utf8 kind.
func (in *Input) IsCurrentWordChar() bool {
	if in.IsConsumed() {
		return false
	}
	return isWordByte(in.bytes[in.pos])
}

// IsPreviousWordChar reports whether the byte immediately before the current
// position is an ASCII word byte.
func (in *Input) IsPreviousWordChar() bool {
	if in.pos == 0 {
		return false
	}
	return isWordByte(in.bytes[in.pos-1])
}

// IsEmptyMatch reports whether the given zero-width assertion holds at the
// current position. See spec §4.B for the truth table this implements.
func (in *Input) IsEmptyMatch(a Assertion) bool {
	switch a {
	case BeginText:
		return in.pos == 0
	case EndText:
		return in.pos == len(in.bytes)
	case BeginLine:
		if in.pos == 0 {
			return true
		}
		return in.multiline && in.bytes[in.pos-1] == '\n'
	case EndLine:
		if in.pos == len(in.bytes) {
			return true
		}
		return in.multiline && in.bytes[in.pos] == '\n'
	case WordBoundaryAscii:
		return in.IsPreviousWordChar() != in.IsCurrentWordChar()
	case NotWordBoundaryAscii:
		return !in.IsEmptyMatch(WordBoundaryAscii)
	default:
		return false
	}
}
