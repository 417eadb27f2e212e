package strkey

import "fmt"

// alphabet is the RFC 4648 base-32 alphabet. StrKey uses it without padding
// characters: a final partial group is zero-padded on the right when
// encoding, and trailing leftover bits are discarded when decoding.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// maxBase32Len bounds decode work on untrusted input. A contract StrKey is
// 56 characters; anything near the ceiling is garbage, but rejecting it
// explicitly keeps worst-case work proportional to a small constant.
const maxBase32Len = 1024

// invAlphabet maps an ASCII byte to its 5-bit value, or -1.
var invAlphabet [256]int8

func init() {
	for i := range invAlphabet {
		invAlphabet[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		invAlphabet[alphabet[i]] = int8(i)
	}
}

// encodeBase32 encodes data as unpadded base-32, MSB-first.
// Output length is ceil(len(data)*8/5); there is no failure path.
func encodeBase32(data []byte) string {
	out := make([]byte, 0, (len(data)*8+4)/5)
	var acc uint32
	bits := 0
	for _, b := range data {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out = append(out, alphabet[acc>>uint(bits)&0x1F])
		}
	}
	if bits > 0 {
		// Residual 1-4 bits fill a final group, zero-padded on the right.
		out = append(out, alphabet[acc<<uint(5-bits)&0x1F])
	}
	return string(out)
}

// decodeBase32 decodes unpadded base-32 text, accepting either case.
// Trailing leftover bits are padding and are discarded.
func decodeBase32(s string) ([]byte, error) {
	if len(s) > maxBase32Len {
		return nil, newError(KindBase32, RuleBase32TooLong,
			fmt.Sprintf("base-32 input is %d characters, limit is %d", len(s), maxBase32Len))
	}
	out := make([]byte, 0, len(s)*5/8)
	var acc uint32
	bits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		v := invAlphabet[c]
		if v < 0 {
			return nil, newError(KindBase32, RuleBase32BadChar,
				fmt.Sprintf("invalid base-32 character %q at position %d", s[i], i))
		}
		acc = acc<<5 | uint32(v)
		bits += 5
		if bits > 32 {
			// Unreachable while the byte drain below runs every iteration;
			// kept as a hard stop against silent truncation.
			return nil, newError(KindBase32, RuleBase32Overflow, "base-32 accumulator overflow")
		}
		for bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>uint(bits)))
		}
	}
	return out, nil
}
