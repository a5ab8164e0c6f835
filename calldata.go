package stwoverifier

import (
	"log"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ABI layout of the verifier contract's verify function. Component names
// must match the wire struct field names: packing resolves tuple fields by
// name.

func cm31_components() []abi.ArgumentMarshaling {
	return []abi.ArgumentMarshaling{
		{Name: "real", Type: "uint32"},
		{Name: "imag", Type: "uint32"},
	}
}

func qm31_components() []abi.ArgumentMarshaling {
	return []abi.ArgumentMarshaling{
		{Name: "first", Type: "tuple", Components: cm31_components()},
		{Name: "second", Type: "tuple", Components: cm31_components()},
	}
}

func fri_layer_components() []abi.ArgumentMarshaling {
	return []abi.ArgumentMarshaling{
		{Name: "friWitness", Type: "tuple[]", Components: qm31_components()},
		{Name: "decommitment", Type: "bytes"},
		{Name: "commitment", Type: "bytes32"},
	}
}

func proof_components() []abi.ArgumentMarshaling {
	return []abi.ArgumentMarshaling{
		{Name: "config", Type: "tuple", Components: []abi.ArgumentMarshaling{
			{Name: "powBits", Type: "uint32"},
			{Name: "friConfig", Type: "tuple", Components: []abi.ArgumentMarshaling{
				{Name: "logBlowupFactor", Type: "uint32"},
				{Name: "logLastLayerDegreeBound", Type: "uint32"},
				{Name: "nQueries", Type: "uint256"},
			}},
		}},
		{Name: "commitments", Type: "bytes32[]"},
		{Name: "sampledValues", Type: "tuple[][][]", Components: qm31_components()},
		{Name: "decommitments", Type: "tuple[]", Components: []abi.ArgumentMarshaling{
			{Name: "hashWitness", Type: "bytes32[]"},
			{Name: "columnWitness", Type: "uint32[]"},
		}},
		{Name: "queriedValues", Type: "uint32[][]"},
		{Name: "proofOfWork", Type: "uint64"},
		{Name: "friProof", Type: "tuple", Components: []abi.ArgumentMarshaling{
			{Name: "firstLayer", Type: "tuple", Components: fri_layer_components()},
			{Name: "innerLayers", Type: "tuple[]", Components: fri_layer_components()},
			{Name: "lastLayerPoly", Type: "tuple[]", Components: qm31_components()},
		}},
		{Name: "compositionPoly", Type: "tuple", Components: []abi.ArgumentMarshaling{
			{Name: "coeffs0", Type: "uint32[]"},
			{Name: "coeffs1", Type: "uint32[]"},
			{Name: "coeffs2", Type: "uint32[]"},
			{Name: "coeffs3", Type: "uint32[]"},
		}},
	}
}

func params_components() []abi.ArgumentMarshaling {
	return []abi.ArgumentMarshaling{
		{Name: "componentParams", Type: "tuple[]", Components: []abi.ArgumentMarshaling{
			{Name: "logSize", Type: "uint32"},
			{Name: "claimedSum", Type: "tuple", Components: qm31_components()},
			{Name: "info", Type: "tuple", Components: []abi.ArgumentMarshaling{
				{Name: "maxConstraintLogDegreeBound", Type: "uint32"},
				{Name: "logSize", Type: "uint32"},
				{Name: "maskOffsets", Type: "int32[][][]"},
				{Name: "preprocessedColumns", Type: "uint256[]"},
			}},
		}},
		{Name: "nPreprocessedColumns", Type: "uint256"},
		{Name: "componentsCompositionLogDegreeBound", Type: "uint32"},
	}
}

func must_type(t string, components []abi.ArgumentMarshaling) abi.Type {
	typ, err := abi.NewType(t, "", components)
	if err != nil {
		log.Fatalln(err)
	}
	return typ
}

var verify_method = sync.OnceValue(func() abi.Method {
	inputs := abi.Arguments{
		{Name: "proof", Type: must_type("tuple", proof_components())},
		{Name: "verificationParams", Type: must_type("tuple", params_components())},
		{Name: "treeRoots", Type: must_type("bytes32[]", nil)},
		{Name: "treeColumnLogSizes", Type: must_type("uint32[][]", nil)},
		{Name: "digest", Type: must_type("bytes32", nil)},
		{Name: "nDraws", Type: must_type("uint32", nil)},
	}
	outputs := abi.Arguments{{Type: must_type("bool", nil)}}
	return abi.NewMethod("verify", "verify", abi.Function, "view", false, false, inputs, outputs)
})

// Calldata ABI-encodes the verify call for the on-chain verifier, selector
// included.
func (me *VerifierInput) Calldata() ([]byte, error) {
	method := verify_method()
	packed, err := method.Inputs.Pack(
		me.Proof,
		me.VerificationParams,
		me.TreeRoots,
		me.TreeColumnLogSizes,
		me.Digest,
		me.NDraws,
	)
	if err != nil {
		return nil, err
	}
	return append(append([]byte(nil), method.ID...), packed...), nil
}
