package crc16

import "testing"

func TestChecksum_CheckValue(t *testing.T) {
	// Standard CRC-16/XMODEM check value.
	if got := Checksum([]byte("123456789")); got != 0x31C3 {
		t.Fatalf("Checksum(123456789) = %#04x, want 0x31c3", got)
	}
}

func TestChecksum_Empty(t *testing.T) {
	if got := Checksum(nil); got != 0 {
		t.Fatalf("Checksum(nil) = %#04x, want 0", got)
	}
	if got := Checksum([]byte{}); got != 0 {
		t.Fatalf("Checksum(empty) = %#04x, want 0", got)
	}
}

func TestChecksum_KnownPayloadPrefix(t *testing.T) {
	// Version byte 0x10 followed by 32 zero bytes: the prefix of the
	// all-zero contract address payload.
	data := make([]byte, 33)
	data[0] = 0x10
	if got := Checksum(data); got != 0x5CC8 {
		t.Fatalf("Checksum(0x10 || zeros) = %#04x, want 0x5cc8", got)
	}
}

func TestChecksum_Deterministic(t *testing.T) {
	data := []byte("the same bytes, twice")
	if Checksum(data) != Checksum(data) {
		t.Fatalf("checksum not deterministic")
	}
}

func TestChecksum_SingleBitSensitivity(t *testing.T) {
	// CRC-16 detects every single-bit error. Flip each bit of a 33-byte
	// buffer and require the checksum to change.
	data := make([]byte, 33)
	data[0] = 0x10
	for i := 1; i < len(data); i++ {
		data[i] = byte(i * 7)
	}
	orig := Checksum(data)
	for i := range data {
		for bit := 0; bit < 8; bit++ {
			data[i] ^= 1 << bit
			if Checksum(data) == orig {
				t.Fatalf("flipping byte %d bit %d left checksum unchanged", i, bit)
			}
			data[i] ^= 1 << bit
		}
	}
}
