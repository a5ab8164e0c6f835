package stark

import (
	"golang.org/x/crypto/sha3"
)

// KeccakChannel is the Fiat-Shamir channel of the commitment scheme. The
// state is a single digest, advanced by absorbing data with legacy
// Keccak-256, the hash the on-chain verifier runs natively.
type KeccakChannel struct {
	digest Hash
}

func (me *KeccakChannel) Digest() Hash {
	return me.digest
}

// MixRoot absorbs a commitment root: digest = keccak256(digest || root).
func (me *KeccakChannel) MixRoot(root Hash) {
	h := sha3.NewLegacyKeccak256()
	h.Write(me.digest[:])
	h.Write(root[:])
	copy(me.digest[:], h.Sum(nil))
}
