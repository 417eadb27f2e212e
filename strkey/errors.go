package strkey

import "errors"

// Kind is a stable category for programmatic error handling. It names the
// codec stage that rejected the input.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	KindHex     Kind = "Hex"
	KindBase32  Kind = "Base32"
	KindPayload Kind = "Payload"
	KindEncode  Kind = "Encode"
)

// Stable RuleIDs naming the violated invariant.
const (
	RuleHexOddLength   = "STRKEY-HEX-001" // hex length is odd
	RuleHexBadChar     = "STRKEY-HEX-002" // non-hex character
	RuleHexBadLength   = "STRKEY-HEX-003" // hex does not decode to 32 bytes
	RuleBase32BadChar  = "STRKEY-B32-001" // character outside A-Z2-7
	RuleBase32TooLong  = "STRKEY-B32-002" // input exceeds the decode ceiling
	RuleBase32Overflow = "STRKEY-B32-003" // bit accumulator overflow
	RulePayloadLength  = "STRKEY-PAY-001" // decoded payload is not 35 bytes
	RuleVersion        = "STRKEY-PAY-002" // version byte is not 0x10
	RuleChecksum       = "STRKEY-PAY-003" // embedded CRC does not match
	RuleAlreadyStrKey  = "STRKEY-ENC-001" // Encode called on a valid StrKey
)

// Error is the codec's structured error type.
//
// RuleID is a stable identifier for the violated invariant; Message is
// intended for humans, do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
