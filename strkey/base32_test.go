package strkey

import (
	"bytes"
	"strings"
	"testing"
)

// RFC 4648 test vectors, without padding characters.
var rfc4648Vectors = []struct {
	raw     string
	encoded string
}{
	{"", ""},
	{"f", "MY"},
	{"fo", "MZXQ"},
	{"foo", "MZXW6"},
	{"foob", "MZXW6YQ"},
	{"fooba", "MZXW6YTB"},
	{"foobar", "MZXW6YTBOI"},
}

func TestEncodeBase32_RFC4648(t *testing.T) {
	for _, tc := range rfc4648Vectors {
		if got := encodeBase32([]byte(tc.raw)); got != tc.encoded {
			t.Fatalf("encodeBase32(%q) = %q, want %q", tc.raw, got, tc.encoded)
		}
	}
}

func TestDecodeBase32_RFC4648(t *testing.T) {
	for _, tc := range rfc4648Vectors {
		got, err := decodeBase32(tc.encoded)
		if err != nil {
			t.Fatalf("decodeBase32(%q): %v", tc.encoded, err)
		}
		if !bytes.Equal(got, []byte(tc.raw)) {
			t.Fatalf("decodeBase32(%q) = %q, want %q", tc.encoded, got, tc.raw)
		}
	}
}

func TestDecodeBase32_CaseInsensitive(t *testing.T) {
	got, err := decodeBase32("mzxw6ytboi")
	if err != nil {
		t.Fatalf("decodeBase32 lowercase: %v", err)
	}
	if string(got) != "foobar" {
		t.Fatalf("got %q, want foobar", got)
	}
}

func TestEncodeBase32_OutputLength(t *testing.T) {
	for n := 0; n <= 64; n++ {
		data := bytes.Repeat([]byte{0x5A}, n)
		want := (n*8 + 4) / 5
		if got := len(encodeBase32(data)); got != want {
			t.Fatalf("encodeBase32 of %d bytes: length %d, want %d", n, got, want)
		}
	}
}

func TestDecodeBase32_RejectsAlphabetViolations(t *testing.T) {
	// '0', '1', '8', '9' are outside A-Z2-7; so is everything non-alphanumeric.
	for _, in := range []string{"A0", "A1", "A8", "A9", "A!", "A ", "AB=", "é"} {
		_, err := decodeBase32(in)
		if err == nil {
			t.Fatalf("decodeBase32(%q): expected error", in)
		}
		if RuleID(err) != RuleBase32BadChar {
			t.Fatalf("decodeBase32(%q): RuleID = %s, want %s", in, RuleID(err), RuleBase32BadChar)
		}
	}
}

func TestDecodeBase32_InputCeiling(t *testing.T) {
	_, err := decodeBase32(strings.Repeat("A", maxBase32Len))
	if err != nil {
		t.Fatalf("input at the ceiling must decode: %v", err)
	}
	_, err = decodeBase32(strings.Repeat("A", maxBase32Len+1))
	if RuleID(err) != RuleBase32TooLong {
		t.Fatalf("oversized input: RuleID = %s, want %s", RuleID(err), RuleBase32TooLong)
	}
}

func TestBase32_RoundTripAllByteValues(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	got, err := decodeBase32(encodeBase32(data))
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch")
	}
}
