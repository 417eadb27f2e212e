package hexutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecode_RoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{0x00},
		{0xFF},
		{0xDE, 0xAD, 0xBE, 0xEF},
		bytes.Repeat([]byte{0xA5}, 32),
	}
	for _, want := range cases {
		got, err := Decode(Encode(want))
		if err != nil {
			t.Fatalf("Decode(Encode(%x)): %v", want, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("round trip mismatch: got %x want %x", got, want)
		}
	}
}

func TestDecode_CaseInsensitive(t *testing.T) {
	lower, err := Decode("deadbeef")
	if err != nil {
		t.Fatalf("Decode lower: %v", err)
	}
	upper, err := Decode("DEADBEEF")
	if err != nil {
		t.Fatalf("Decode upper: %v", err)
	}
	if !bytes.Equal(lower, upper) {
		t.Fatalf("case sensitivity: %x != %x", lower, upper)
	}
}

func TestDecode_TrimsWhitespace(t *testing.T) {
	got, err := Decode("  0a0b \n")
	if err != nil {
		t.Fatalf("Decode with whitespace: %v", err)
	}
	if !bytes.Equal(got, []byte{0x0A, 0x0B}) {
		t.Fatalf("got %x", got)
	}
}

func TestDecode_OddLength(t *testing.T) {
	if _, err := Decode("abc"); !errors.Is(err, ErrOddLength) {
		t.Fatalf("expected ErrOddLength, got %v", err)
	}
}

func TestDecode_InvalidCharacterPosition(t *testing.T) {
	cases := []struct {
		in   string
		char byte
		pos  int
	}{
		{"zz", 'z', 0},
		{"0g", 'g', 1},
		{"00ff!0", '!', 4},
		{"0x10", 'x', 1}, // 0x prefixes are not accepted
	}
	for _, tc := range cases {
		_, err := Decode(tc.in)
		var ibe *InvalidByteError
		if !errors.As(err, &ibe) {
			t.Fatalf("Decode(%q): expected *InvalidByteError, got %v", tc.in, err)
		}
		if ibe.Byte != tc.char || ibe.Pos != tc.pos {
			t.Fatalf("Decode(%q): got byte %q pos %d, want %q pos %d", tc.in, ibe.Byte, ibe.Pos, tc.char, tc.pos)
		}
	}
}

func TestEncode_CanonicalLowercase(t *testing.T) {
	if got := Encode([]byte{0xAB, 0xCD, 0x01}); got != "abcd01" {
		t.Fatalf("Encode = %q, want %q", got, "abcd01")
	}
	if got := Encode(nil); got != "" {
		t.Fatalf("Encode(nil) = %q, want empty", got)
	}
}
