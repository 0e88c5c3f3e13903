package input

import "testing"

func TestDecodeASCII(t *testing.T) {
	cp, n, err := Decode([]byte("a"))
	if err != nil || cp != 'a' || n != 1 {
		t.Fatalf("Decode('a') = %v, %v, %v", cp, n, err)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	codepoints := []rune{
		0x00, 0x41, 0x7F, // ASCII boundary
		0x80, 0x7FF, // 2-byte boundary
		0x800, 0xFFFF - 1, // 3-byte boundary (avoid surrogates directly)
		0x10000, 0x10FFFF, // 4-byte boundary
		'世', '界', '🎉',
	}

	for _, cp := range codepoints {
		enc := Encode(nil, cp)
		got, n, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(Encode(%U)) returned error: %v", cp, err)
		}
		if got != cp {
			t.Errorf("Decode(Encode(%U)) = %U, want %U", cp, got, cp)
		}
		if n != len(enc) {
			t.Errorf("Decode(Encode(%U)) consumed %d bytes, want %d", cp, n, len(enc))
		}
	}
}

func TestDecodeOverlong(t *testing.T) {
	// 0xC0 0x80 is an overlong encoding of NUL (U+0000).
	_, _, err := Decode([]byte{0xC0, 0x80})
	assertKind(t, err, OverlongEncoding)

	// 0xE0 0x80 0x80 is an overlong 3-byte encoding.
	_, _, err = Decode([]byte{0xE0, 0x80, 0x80})
	assertKind(t, err, OverlongEncoding)
}

func TestDecodeSurrogate(t *testing.T) {
	// 0xED 0xA0 0x80 decodes to U+D800, a surrogate half.
	_, _, err := Decode([]byte{0xED, 0xA0, 0x80})
	assertKind(t, err, InvalidCodepoint)
}

func TestDecodeAboveMax(t *testing.T) {
	// 0xF4 0x90 0x80 0x80 decodes to U+110000, one past U+10FFFF.
	_, _, err := Decode([]byte{0xF4, 0x90, 0x80, 0x80})
	assertKind(t, err, InvalidCodepoint)
}

func TestDecodeIncomplete(t *testing.T) {
	_, _, err := Decode([]byte{0xE0, 0xA0})
	assertKind(t, err, IncompleteSequence)

	_, _, err = Decode(nil)
	assertKind(t, err, IncompleteSequence)
}

func TestDecodeUnexpectedContinuation(t *testing.T) {
	_, _, err := Decode([]byte{0x80})
	assertKind(t, err, UnexpectedContinuationByte)
}

func TestDecodeErrorAdvancesOneByte(t *testing.T) {
	in := New([]byte{0xFF, 'a'}, Utf8, false)

	cp, ok := in.Current()
	if !ok || cp != 0 {
		t.Fatalf("invalid utf-8 should report ok=true with null codepoint, got %v, %v", cp, ok)
	}
	in.Advance()
	if in.Pos() != 1 {
		t.Fatalf("invalid utf-8 should advance exactly one byte, pos = %d", in.Pos())
	}

	cp, ok = in.Current()
	if !ok || cp != 'a' {
		t.Fatalf("expected to recover and decode 'a', got %v, %v", cp, ok)
	}
}

func assertKind(t *testing.T, err error, want DecodeErrorKind) {
	t.Helper()
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected *DecodeError, got %T (%v)", err, err)
	}
	if de.Kind != want {
		t.Fatalf("got error kind %v, want %v", de.Kind, want)
	}
}

func TestDecodeErrorKindString(t *testing.T) {
	tests := []struct {
		kind DecodeErrorKind
		want string
	}{
		{IncompleteSequence, "IncompleteSequence"},
		{UnexpectedContinuationByte, "UnexpectedContinuationByte"},
		{OverlongEncoding, "OverlongEncoding"},
		{InvalidCodepoint, "InvalidCodepoint"},
		{DecodeErrorKind(99), "UnknownDecodeErrorKind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
