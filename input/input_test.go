package input

import "testing"

func TestBeginEndText(t *testing.T) {
	in := New([]byte("ab"), Bytes, false)

	if !in.IsEmptyMatch(BeginText) {
		t.Error("BeginText should hold at pos 0")
	}
	if in.IsEmptyMatch(EndText) {
		t.Error("EndText should not hold at pos 0 with remaining input")
	}

	in.Advance()
	in.Advance()
	if !in.IsEmptyMatch(EndText) {
		t.Error("EndText should hold at end of input")
	}
	if in.IsEmptyMatch(BeginText) {
		t.Error("BeginText should not hold at end of input")
	}
}

func TestBeginEndLineMultiline(t *testing.T) {
	in := New([]byte("a\nb"), Bytes, true)

	if !in.IsEmptyMatch(BeginLine) {
		t.Error("BeginLine should hold at pos 0")
	}

	in.Advance() // pos=1, current='\n'
	if !in.IsEmptyMatch(EndLine) {
		t.Error("EndLine should hold right before '\\n' in multiline mode")
	}

	in.Advance() // pos=2, current='b', previous='\n'
	if !in.IsEmptyMatch(BeginLine) {
		t.Error("BeginLine should hold right after '\\n' in multiline mode")
	}

	in.Advance() // pos=3, end of input
	if !in.IsEmptyMatch(EndLine) {
		t.Error("EndLine should hold at end of input regardless of multiline")
	}
}

func TestBeginEndLineSingleline(t *testing.T) {
	in := New([]byte("a\nb"), Bytes, false)
	in.Advance() // pos=1, current='\n'

	if in.IsEmptyMatch(EndLine) {
		t.Error("EndLine should not trigger on '\\n' when multiline is disabled")
	}
}

func TestEndLineExhaustive(t *testing.T) {
	// Property from spec §8.5: for all s and i, EndLine(i) iff i=|s| or
	// (multiline and s[i]='\n').
	s := []byte("x\ny\n")
	for _, multiline := range []bool{true, false} {
		for i := 0; i <= len(s); i++ {
			in := New(s, Bytes, multiline)
			in.SetPos(i)

			want := i == len(s) || (multiline && i < len(s) && s[i] == '\n')
			got := in.IsEmptyMatch(EndLine)
			if got != want {
				t.Errorf("multiline=%v i=%d: EndLine=%v, want %v", multiline, i, got, want)
			}
		}
	}
}

func TestWordBoundaryDuality(t *testing.T) {
	s := []byte("foo bar_1 !x")
	for i := 0; i <= len(s); i++ {
		in := New(s, Bytes, false)
		in.SetPos(i)

		wb := in.IsEmptyMatch(WordBoundaryAscii)
		nwb := in.IsEmptyMatch(NotWordBoundaryAscii)
		if wb == nwb {
			t.Errorf("pos %d: WordBoundaryAscii(%v) xor NotWordBoundaryAscii(%v) should be true", i, wb, nwb)
		}
	}
}

func TestWordBoundaryAtEdges(t *testing.T) {
	in := New([]byte("go"), Bytes, false)
	if !in.IsEmptyMatch(WordBoundaryAscii) {
		t.Error("start of a word-initial string should be a word boundary")
	}
	in.SetPos(2)
	if !in.IsEmptyMatch(WordBoundaryAscii) {
		t.Error("end of a word-final string should be a word boundary")
	}
}

func TestUtf8KindCurrentAndAdvance(t *testing.T) {
	in := New([]byte("世界"), Utf8, false)

	cp, ok := in.Current()
	if !ok || cp != '世' {
		t.Fatalf("Current() = %v, %v, want '世'", cp, ok)
	}
	in.Advance()
	if in.Pos() != 3 {
		t.Fatalf("Advance() should move past the 3-byte encoding of '世', pos = %d", in.Pos())
	}

	cp, ok = in.Current()
	if !ok || cp != '界' {
		t.Fatalf("Current() = %v, %v, want '界'", cp, ok)
	}
}

func TestBytesKindIsByteWise(t *testing.T) {
	in := New([]byte("世"), Bytes, false)
	cp, ok := in.Current()
	if !ok || cp != rune(in.Bytes()[0]) {
		t.Fatalf("Bytes kind should expose the raw byte, got %v", cp)
	}
	in.Advance()
	if in.Pos() != 1 {
		t.Fatalf("Bytes kind should advance one byte at a time, pos = %d", in.Pos())
	}
}

func TestCurrentByteIgnoresKind(t *testing.T) {
	// CurrentByte/AdvanceByte must step one raw byte at a time even under
	// Utf8 kind, since Program instructions are always byte-level.
	in := New([]byte("世"), Utf8, false)

	b, ok := in.CurrentByte()
	if !ok || b != 0xE4 {
		t.Fatalf("CurrentByte() = %v, %v, want 0xE4, true", b, ok)
	}
	in.AdvanceByte()
	if in.Pos() != 1 {
		t.Fatalf("AdvanceByte() should move exactly one byte, pos = %d", in.Pos())
	}

	b, ok = in.CurrentByte()
	if !ok || b != 0xB8 {
		t.Fatalf("CurrentByte() = %v, %v, want 0xB8, true", b, ok)
	}
}

func TestCurrentByteAtEndOfInput(t *testing.T) {
	in := New([]byte("a"), Bytes, false)
	in.AdvanceByte()

	if _, ok := in.CurrentByte(); ok {
		t.Error("CurrentByte() should report false past the end of input")
	}
	in.AdvanceByte() // no-op
	if in.Pos() != 1 {
		t.Error("AdvanceByte() should not move past end of input")
	}
}

func TestIsConsumed(t *testing.T) {
	in := New([]byte("a"), Bytes, false)
	if in.IsConsumed() {
		t.Error("should not be consumed before reading the only byte")
	}
	in.Advance()
	if !in.IsConsumed() {
		t.Error("should be consumed after the only byte is read")
	}
	in.Advance() // no-op
	if !in.IsConsumed() {
		t.Error("advancing past end should remain consumed")
	}
}
