// Package strkey converts Soroban contract identifiers between their raw
// 32-byte hash form (hex, as returned by RPC/XDR) and the human-shareable
// StrKey text form (unpadded base-32 beginning with 'C').
//
// A contract StrKey is the base-32 encoding of a 35-byte payload:
//
//	version(0x10) || hash(32) || crc16-xmodem(2, little-endian)
//
// where the checksum covers the first 33 bytes. Every contract StrKey is
// exactly 56 characters over the alphabet A-Z2-7.
//
// All functions are pure and safe for concurrent use. Errors are structured
// (*Error with stable Kind and RuleID); see errors.go.
package strkey
