// Package crc16 implements the CRC-16/XMODEM checksum used by StrKey payloads.
//
// Parameters: polynomial 0x1021 (CCITT), initial value 0, no reflection,
// no final XOR. Check value: Checksum([]byte("123456789")) == 0x31C3.
package crc16

const poly = 0x1021

// Checksum returns the CRC-16/XMODEM checksum of data.
//
// The computation is bit-serial on purpose: the payloads this repo checksums
// are 33 bytes, so a lookup table buys nothing. uint16 arithmetic gives the
// wrapping left shifts the algorithm requires.
func Checksum(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
