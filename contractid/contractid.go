// Package contractid derives IPFS-compatible content identifiers from
// Soroban contract hashes.
//
// A contract hash is already a sha2-256 digest, so it can be wrapped as a
// CIDv1 (raw codec + sha2-256 multihash) without rehashing. The resulting
// CID is a stable key for contract metadata kept in content-addressed
// stores.
package contractid

import (
	"crypto/sha256"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/christopherkarani/blendv3-sub002/hexutil"
	"github.com/christopherkarani/blendv3-sub002/strkey"
)

// FromHash wraps a raw 32-byte contract hash as a CIDv1.
func FromHash(hash []byte) (cid.Cid, error) {
	if len(hash) != sha256.Size {
		return cid.Undef, fmt.Errorf("contractid: hash must be %d bytes, got %d", sha256.Size, len(hash))
	}
	// multihash.Encode wraps an existing digest; it does not hash again.
	mh, err := multihash.Encode(hash, multihash.SHA2_256)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, multihash.Multihash(mh)), nil
}

// FromAddress derives the CIDv1 for the hash behind a StrKey contract
// address.
func FromAddress(addr string) (cid.Cid, error) {
	hexHash, err := strkey.Decode(addr)
	if err != nil {
		return cid.Undef, err
	}
	raw, err := hexutil.Decode(hexHash)
	if err != nil {
		return cid.Undef, err
	}
	return FromHash(raw)
}
