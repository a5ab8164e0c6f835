package stwoverifier

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/neotheprogramist/stwo-sol-verifier/stark"
)

var ErrCompositionShape = errors.New("composition polynomial must have 4 equal-length coordinates")

// Wire structs mirror the verifier contract's types field for field. Do not
// reorder: the ABI tuple layout is positional.

type CM31 struct {
	Real uint32
	Imag uint32
}

type QM31 struct {
	First  CM31
	Second CM31
}

type FriConfig struct {
	LogBlowupFactor         uint32
	LogLastLayerDegreeBound uint32
	NQueries                *big.Int
}

type Config struct {
	PowBits   uint32
	FriConfig FriConfig
}

type Decommitment struct {
	HashWitness   []common.Hash
	ColumnWitness []uint32
}

type FriLayerProof struct {
	FriWitness   []QM31
	Decommitment []byte
	Commitment   common.Hash
}

type FriProof struct {
	FirstLayer    FriLayerProof
	InnerLayers   []FriLayerProof
	LastLayerPoly []QM31
}

type CompositionPoly struct {
	Coeffs0 []uint32
	Coeffs1 []uint32
	Coeffs2 []uint32
	Coeffs3 []uint32
}

type Proof struct {
	Config          Config
	Commitments     []common.Hash
	SampledValues   [][][]QM31
	Decommitments   []Decommitment
	QueriedValues   [][]uint32
	ProofOfWork     uint64
	FriProof        FriProof
	CompositionPoly CompositionPoly
}

func qm31ToWire(v stark.QM31) QM31 {
	a, b, c, d := DecomposeQM31(v)
	return QM31{
		First:  CM31{Real: a, Imag: b},
		Second: CM31{Real: c, Imag: d},
	}
}

func friWitnessToWire(witness []stark.QM31) []QM31 {
	out := make([]QM31, len(witness))
	for i, v := range witness {
		out[i] = qm31ToWire(v)
	}
	return out
}

func columnWitnessToWire(witness []stark.M31) []uint32 {
	out := make([]uint32, len(witness))
	for i, v := range witness {
		out[i] = v.Uint32()
	}
	return out
}

// transcode_fri_layer packs a single folding step: decomposed witness,
// packed decommitment bytes, commitment digest copied unchanged.
func transcode_fri_layer(layer *stark.FriLayerProof) (FriLayerProof, error) {
	packed, err := EncodeDecommitmentPacked(
		layer.Decommitment.HashWitness,
		columnWitnessToWire(layer.Decommitment.ColumnWitness),
	)
	if err != nil {
		return FriLayerProof{}, err
	}
	return FriLayerProof{
		FriWitness:   friWitnessToWire(layer.FriWitness),
		Decommitment: packed,
		Commitment:   common.Hash(layer.Commitment),
	}, nil
}

// FromStarkProof fills me with the contract representation of proof. The
// inputs are read only; the proof object stays usable by the caller. On any
// error me is left untouched.
func (me *Proof) FromStarkProof(proof *stark.Proof, composition *stark.CompositionPolynomial) error {
	if len(composition.Coordinates) != SECURE_EXTENSION_DEGREE {
		return fmt.Errorf("%w: got %d coordinates", ErrCompositionShape, len(composition.Coordinates))
	}
	for _, coord := range composition.Coordinates {
		if len(coord) != len(composition.Coordinates[0]) {
			return fmt.Errorf("%w: coordinate lengths differ", ErrCompositionShape)
		}
	}

	commitments := make([]common.Hash, len(proof.Commitments))
	for i, c := range proof.Commitments {
		commitments[i] = common.Hash(c)
	}

	sampled := make([][][]QM31, len(proof.SampledValues))
	for t, tree := range proof.SampledValues {
		sampled[t] = make([][]QM31, len(tree))
		for c, column := range tree {
			sampled[t][c] = friWitnessToWire(column)
		}
	}

	decommitments := make([]Decommitment, len(proof.Decommitments))
	for i, decom := range proof.Decommitments {
		hashes := make([]common.Hash, len(decom.HashWitness))
		for j, h := range decom.HashWitness {
			hashes[j] = common.Hash(h)
		}
		decommitments[i] = Decommitment{
			HashWitness:   hashes,
			ColumnWitness: columnWitnessToWire(decom.ColumnWitness),
		}
	}

	queried := make([][]uint32, len(proof.QueriedValues))
	for t, tree := range proof.QueriedValues {
		queried[t] = columnWitnessToWire(tree)
	}

	firstLayer, err := transcode_fri_layer(&proof.FriProof.FirstLayer)
	if err != nil {
		return err
	}

	// Inner layers are independent, so they transcode concurrently; the
	// result slice keeps the folding order.
	innerLayers := make([]FriLayerProof, len(proof.FriProof.InnerLayers))
	var group errgroup.Group
	for i := range proof.FriProof.InnerLayers {
		group.Go(func() error {
			layer, err := transcode_fri_layer(&proof.FriProof.InnerLayers[i])
			innerLayers[i] = layer
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	lastLayer := append([]stark.QM31(nil), proof.FriProof.LastLayerPoly...)
	if err := BitReverse(lastLayer); err != nil {
		return fmt.Errorf("last layer poly: %w", err)
	}

	me.Config = Config{
		PowBits: proof.Config.PowBits,
		FriConfig: FriConfig{
			LogBlowupFactor:         proof.Config.FriConfig.LogBlowupFactor,
			LogLastLayerDegreeBound: proof.Config.FriConfig.LogLastLayerDegreeBound,
			NQueries:                new(big.Int).SetUint64(proof.Config.FriConfig.NQueries),
		},
	}
	me.Commitments = commitments
	me.SampledValues = sampled
	me.Decommitments = decommitments
	me.QueriedValues = queried
	me.ProofOfWork = proof.ProofOfWork
	me.FriProof = FriProof{
		FirstLayer:    firstLayer,
		InnerLayers:   innerLayers,
		LastLayerPoly: friWitnessToWire(lastLayer),
	}
	me.CompositionPoly = CompositionPoly{
		Coeffs0: columnWitnessToWire(composition.Coordinates[0]),
		Coeffs1: columnWitnessToWire(composition.Coordinates[1]),
		Coeffs2: columnWitnessToWire(composition.Coordinates[2]),
		Coeffs3: columnWitnessToWire(composition.Coordinates[3]),
	}
	return nil
}
