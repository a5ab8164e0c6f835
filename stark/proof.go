package stark

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
)

// Hash is a 32 byte Merkle tree digest.
type Hash [32]byte

func (me Hash) Hex() string {
	return hex.EncodeToString(me[:])
}

func HashFromHex(s string) (h Hash, err error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	if len(b) != len(h) {
		return h, fmt.Errorf("hash must be %d bytes, got %d", len(h), len(b))
	}
	copy(h[:], b)
	return h, nil
}

func (me Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(me.Hex())
}

func (me *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	h, err := HashFromHex(s)
	if err != nil {
		return err
	}
	*me = h
	return nil
}

// FriConfig holds the FRI protocol parameters of a proof.
type FriConfig struct {
	LogBlowupFactor         uint32 `json:"log_blowup_factor"`
	LogLastLayerDegreeBound uint32 `json:"log_last_layer_degree_bound"`
	NQueries                uint64 `json:"n_queries"`
}

// PcsConfig holds the commitment scheme parameters of a proof.
type PcsConfig struct {
	PowBits   uint32    `json:"pow_bits"`
	FriConfig FriConfig `json:"fri_config"`
}

// Decommitment proves membership of queried leaves in a committed column
// tree: sibling digests plus the revealed column values.
type Decommitment struct {
	HashWitness   []Hash `json:"hash_witness"`
	ColumnWitness []M31  `json:"column_witness"`
}

// FriLayerProof is the opening of a single FRI folding step.
type FriLayerProof struct {
	FriWitness   []QM31       `json:"fri_witness"`
	Decommitment Decommitment `json:"decommitment"`
	Commitment   Hash         `json:"commitment"`
}

// FriProof carries the first layer, the inner folding layers highest degree
// first, and the last layer polynomial coefficients in canonical order.
type FriProof struct {
	FirstLayer    FriLayerProof   `json:"first_layer"`
	InnerLayers   []FriLayerProof `json:"inner_layers"`
	LastLayerPoly []QM31          `json:"last_layer_poly"`
}

// Proof is the full STARK proof as produced by the prover. Sampled values
// nest per tree, per column, per queried row; decommitments and queried
// values are per tree.
type Proof struct {
	Config        PcsConfig      `json:"config"`
	Commitments   []Hash         `json:"commitments"`
	SampledValues [][][]QM31     `json:"sampled_values"`
	Decommitments []Decommitment `json:"decommitments"`
	QueriedValues [][]M31        `json:"queried_values"`
	ProofOfWork   uint64         `json:"proof_of_work"`
	FriProof      FriProof       `json:"fri_proof"`
}

// CompositionPolynomial is the combined constraint polynomial, decomposed
// into its coordinate polynomials over the base field. The proof system
// works over a degree four extension, so a well formed value has exactly
// four coordinates of equal length.
type CompositionPolynomial struct {
	Coordinates [][]M31 `json:"coordinates"`
}

// ProofData is the on-disk dump format of a proving run: the proof, the
// composition polynomial and the trace metadata needed to rebuild the
// constraint components.
type ProofData struct {
	Proof                 Proof                 `json:"proof"`
	CompositionPolynomial CompositionPolynomial `json:"composition_polynomial"`
	LogSize               uint32                `json:"log_size"`
}

func DecodeProofData(r io.Reader) (*ProofData, error) {
	var data ProofData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode proof data: %w", err)
	}
	return &data, nil
}
