package strkey

import (
	"encoding/binary"
	"fmt"

	"github.com/christopherkarani/blendv3-sub002/crc16"
)

const (
	// contractVersion tags payloads carrying a 32-byte contract hash.
	// It is why every contract StrKey starts with 'C'.
	contractVersion = 0x10

	// HashLen is the size of a raw contract hash.
	HashLen = 32

	payloadLen = HashLen + 3 // version + hash + 2 checksum bytes

	// EncodedLen is the length of every contract StrKey: ceil(35*8/5).
	EncodedLen = 56
)

// buildPayload assembles version || hash || checksum for a 32-byte hash.
//
// The checksum covers the first 33 bytes and is appended little-endian
// (low byte first). That byte order is part of the address format; changing
// it breaks interop with every other StrKey implementation.
//
// Calling this with a hash that is not 32 bytes is a programming error.
func buildPayload(hash []byte) []byte {
	if len(hash) != HashLen {
		panic(fmt.Sprintf("strkey: buildPayload called with %d-byte hash", len(hash)))
	}
	p := make([]byte, 0, payloadLen)
	p = append(p, contractVersion)
	p = append(p, hash...)
	var ck [2]byte
	binary.LittleEndian.PutUint16(ck[:], crc16.Checksum(p))
	return append(p, ck[:]...)
}

// parsePayload validates a decoded payload and returns its 32-byte hash.
// Checks run in a fixed order: length, then version, then checksum.
func parsePayload(p []byte) ([]byte, error) {
	if len(p) != payloadLen {
		return nil, newError(KindPayload, RulePayloadLength,
			fmt.Sprintf("payload is %d bytes, want %d", len(p), payloadLen))
	}
	if p[0] != contractVersion {
		return nil, newError(KindPayload, RuleVersion,
			fmt.Sprintf("unsupported version byte %#02x, want %#02x", p[0], contractVersion))
	}
	want := binary.LittleEndian.Uint16(p[payloadLen-2:])
	if got := crc16.Checksum(p[:payloadLen-2]); got != want {
		return nil, newError(KindPayload, RuleChecksum,
			fmt.Sprintf("checksum mismatch: computed %#04x, embedded %#04x", got, want))
	}
	return p[1 : 1+HashLen], nil
}
