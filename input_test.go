package stwoverifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/neotheprogramist/stwo-sol-verifier/circuits/fibonacci"
	"github.com/neotheprogramist/stwo-sol-verifier/stark"
)

func sampleVerifierInput(t *testing.T) *VerifierInput {
	t.Helper()
	component := &fibonacci.Component{LogNRows: 4}
	input, err := BuildVerifierInput(
		sampleStarkProof(),
		sampleComposition(),
		[]stark.Component{component},
		0,
	)
	require.NoError(t, err)
	return input
}

func TestBuildVerifierInput(t *testing.T) {
	proof := sampleStarkProof()
	input := sampleVerifierInput(t)

	require.Len(t, input.TreeRoots, N_TREES)
	assert.EqualValues(t, proof.Commitments[0], input.TreeRoots[0])
	assert.EqualValues(t, proof.Commitments[1], input.TreeRoots[1])

	// Trace columns of log size 4 extended by the blow-up factor 1.
	assert.Equal(t, [][]uint32{{}, {5, 5, 5}}, input.TreeColumnLogSizes)
	assert.Equal(t, uint32(N_DRAWS), input.NDraws)
}

func TestBuildVerifierInputDigest(t *testing.T) {
	proof := sampleStarkProof()
	input := sampleVerifierInput(t)

	var digest [32]byte
	for _, root := range proof.Commitments {
		h := sha3.NewLegacyKeccak256()
		h.Write(digest[:])
		h.Write(root[:])
		copy(digest[:], h.Sum(nil))
	}
	assert.EqualValues(t, digest, input.Digest)
}

func TestBuildVerifierInputErrors(t *testing.T) {
	proof := sampleStarkProof()
	composition := sampleComposition()
	component := &fibonacci.Component{LogNRows: 4}

	_, err := BuildVerifierInput(proof, composition, nil, 0)
	assert.ErrorIs(t, err, ErrNoComponents)

	short := *proof
	short.Commitments = proof.Commitments[:1]
	_, err = BuildVerifierInput(&short, composition, []stark.Component{component}, 0)
	assert.ErrorIs(t, err, ErrCommitmentCount)

	bad := *composition
	bad.Coordinates = bad.Coordinates[:3]
	_, err = BuildVerifierInput(proof, &bad, []stark.Component{component}, 0)
	assert.ErrorIs(t, err, ErrCompositionShape)
}
