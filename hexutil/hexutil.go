// Package hexutil converts between hexadecimal text and raw bytes.
//
// Unlike encoding/hex, Decode trims surrounding whitespace, accepts both
// cases, and reports the position of the first offending character —
// the inputs here come straight out of RPC responses and user paste buffers,
// and callers need to say exactly what was wrong with them.
package hexutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOddLength reports a hex string whose length is not a multiple of two.
var ErrOddLength = errors.New("hexutil: odd-length hex string")

// InvalidByteError reports the first non-hex character and its position in
// the (whitespace-trimmed) input.
type InvalidByteError struct {
	Byte byte
	Pos  int
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("hexutil: invalid hex character %q at position %d", e.Byte, e.Pos)
}

// Decode converts hex text to raw bytes.
//
// Surrounding whitespace is trimmed and input is case-insensitive. Fails
// with ErrOddLength or *InvalidByteError; never partially succeeds.
func Decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s)%2 != 0 {
		return nil, ErrOddLength
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := fromHexChar(s[i])
		if !ok {
			return nil, &InvalidByteError{Byte: s[i], Pos: i}
		}
		lo, ok := fromHexChar(s[i+1])
		if !ok {
			return nil, &InvalidByteError{Byte: s[i+1], Pos: i + 1}
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

// Encode returns the canonical lowercase hex representation of b.
// Output length is always 2*len(b).
func Encode(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, 2*len(b))
	for i, v := range b {
		out[2*i] = digits[v>>4]
		out[2*i+1] = digits[v&0x0F]
	}
	return string(out)
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
