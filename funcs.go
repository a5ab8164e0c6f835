package stwoverifier

import (
	"errors"
	"math"
	"math/bits"

	"github.com/holiman/uint256"

	"github.com/neotheprogramist/stwo-sol-verifier/stark"
)

var ErrWitnessTooLong = errors.New("witness sequence too long to encode")
var ErrNotPowerOfTwo = errors.New("sequence length is not a power of two")

// DecomposeQM31 splits an extension field element into its four base field
// coordinates as (first.real, first.imag, second.real, second.imag). The
// ordering is the wire contract of the on-chain verifier.
func DecomposeQM31(v stark.QM31) (uint32, uint32, uint32, uint32) {
	return v.First.Real.Uint32(), v.First.Imag.Uint32(),
		v.Second.Real.Uint32(), v.Second.Imag.Uint32()
}

// EncodeDecommitmentPacked recreates the contract's abi.encodePacked layout
// for a FRI layer decommitment: a 32 byte big-endian hash count, the raw
// digests, a 32 byte big-endian column count, then each value as 4 byte
// big-endian. Empty witnesses still emit their zero length prefixes.
func EncodeDecommitmentPacked(hashes []stark.Hash, columns []uint32) ([]byte, error) {
	if len(hashes) > math.MaxUint32 || len(columns) > math.MaxUint32 {
		return nil, ErrWitnessTooLong
	}
	encoded := make([]byte, 0, 64+32*len(hashes)+4*len(columns))

	prefix := uint256.NewInt(uint64(len(hashes))).Bytes32()
	encoded = append(encoded, prefix[:]...)
	for _, h := range hashes {
		encoded = append(encoded, h[:]...)
	}

	prefix = uint256.NewInt(uint64(len(columns))).Bytes32()
	encoded = append(encoded, prefix[:]...)
	for _, val := range columns {
		encoded = append(encoded, byte(val>>24), byte(val>>16), byte(val>>8), byte(val))
	}
	return encoded, nil
}

// BitReverse permutes a power of two sized slice in place, swapping index i
// with the bit-reversal of i. The permutation is its own inverse.
func BitReverse(vals []stark.QM31) error {
	n := len(vals)
	if n&(n-1) != 0 {
		return ErrNotPowerOfTwo
	}
	k := uint(bits.TrailingZeros(uint(n)))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse32(uint32(i)) >> (32 - k))
		if i < j {
			vals[i], vals[j] = vals[j], vals[i]
		}
	}
	return nil
}
