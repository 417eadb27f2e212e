package strkey

import (
	"errors"
	"fmt"
	"strings"

	"github.com/christopherkarani/blendv3-sub002/hexutil"
)

// Encode converts a 64-character contract hash hex string into its StrKey
// text form. The hex is case-insensitive and may carry surrounding
// whitespace; output is always EncodedLen characters starting with 'C'.
//
// Input that is already a valid contract StrKey is rejected with
// RuleAlreadyStrKey rather than double-encoded.
func Encode(hexHash string) (string, error) {
	trimmed := strings.TrimSpace(hexHash)
	if IsValidContractAddress(trimmed) {
		return "", newError(KindEncode, RuleAlreadyStrKey,
			"input is already a StrKey contract address")
	}
	raw, err := hexutil.Decode(trimmed)
	if err != nil {
		var ibe *hexutil.InvalidByteError
		switch {
		case errors.Is(err, hexutil.ErrOddLength):
			return "", wrapError(KindHex, RuleHexOddLength, "hex input has odd length", err)
		case errors.As(err, &ibe):
			return "", wrapError(KindHex, RuleHexBadChar,
				fmt.Sprintf("invalid hex character %q at position %d", ibe.Byte, ibe.Pos), err)
		default:
			return "", wrapError(KindHex, RuleHexBadChar, "invalid hex input", err)
		}
	}
	if len(raw) != HashLen {
		return "", newError(KindHex, RuleHexBadLength,
			fmt.Sprintf("hex decodes to %d bytes, contract hash must be %d", len(raw), HashLen))
	}
	return encodeBase32(buildPayload(raw)), nil
}

// Decode converts a StrKey contract address back to the lowercase hex form
// of its 32-byte hash. Any failure of the inner stages propagates as the
// corresponding *Error.
func Decode(strKey string) (string, error) {
	payload, err := decodeBase32(strKey)
	if err != nil {
		return "", err
	}
	hash, err := parsePayload(payload)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(hash), nil
}

// IsValidContractAddress reports whether s is a structurally valid contract
// StrKey (alphabet, length, version, checksum). It swallows the specific
// error; callers needing detail should use Decode.
func IsValidContractAddress(s string) bool {
	_, err := Decode(s)
	return err == nil
}
