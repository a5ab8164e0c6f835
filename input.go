package stwoverifier

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/neotheprogramist/stwo-sol-verifier/stark"
)

var ErrCommitmentCount = errors.New("proof must commit one preprocessed and one trace tree")

// VerifierInput is the complete bundle the verify call takes on chain.
type VerifierInput struct {
	Proof              Proof
	VerificationParams VerificationParams
	TreeRoots          []common.Hash
	TreeColumnLogSizes [][]uint32
	Digest             common.Hash
	NDraws             uint32
}

// BuildVerifierInput assembles the full bundle for an already proven (and,
// if the caller wants, locally verified) proof. The channel digest is the
// state after absorbing both tree roots, which is where the contract picks
// up the transcript. Components must be listed in trace commitment order;
// tree column log sizes come from the first component's trace layout,
// extended by the blow-up factor.
func BuildVerifierInput(
	proof *stark.Proof,
	composition *stark.CompositionPolynomial,
	components []stark.Component,
	nPreprocessedColumns int,
) (*VerifierInput, error) {
	if len(components) == 0 {
		return nil, ErrNoComponents
	}
	if len(proof.Commitments) != N_TREES {
		return nil, fmt.Errorf("%w: got %d commitments", ErrCommitmentCount, len(proof.Commitments))
	}

	channel := &stark.KeccakChannel{}
	roots := make([]common.Hash, len(proof.Commitments))
	for i, c := range proof.Commitments {
		roots[i] = common.Hash(c)
		channel.MixRoot(c)
	}

	bounds := components[0].TraceLogDegreeBounds()
	extended := make([][]uint32, len(bounds))
	for t, tree := range bounds {
		extended[t] = make([]uint32, len(tree))
		for c, logSize := range tree {
			extended[t][c] = logSize + proof.Config.FriConfig.LogBlowupFactor
		}
	}

	var input VerifierInput
	if err := input.Proof.FromStarkProof(proof, composition); err != nil {
		return nil, err
	}
	if err := input.VerificationParams.FromComponents(components, nPreprocessedColumns); err != nil {
		return nil, err
	}
	input.TreeRoots = roots
	input.TreeColumnLogSizes = extended
	input.Digest = common.Hash(channel.Digest())
	input.NDraws = N_DRAWS
	return &input, nil
}
