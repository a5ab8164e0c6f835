package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	stwoverifier "github.com/neotheprogramist/stwo-sol-verifier"
	"github.com/neotheprogramist/stwo-sol-verifier/circuits/fibonacci"
	"github.com/neotheprogramist/stwo-sol-verifier/stark"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalln("usage:", os.Args[0], "<proof.json>")
	}
	data, err := stwoverifier.ReadProofFixture(os.Args[1])
	if err != nil {
		log.Fatalln(err)
	}
	input, err := stwoverifier.BuildVerifierInput(
		&data.Proof,
		&data.CompositionPolynomial,
		[]stark.Component{&fibonacci.Component{LogNRows: data.LogSize}},
		0,
	)
	if err != nil {
		log.Fatalln(err)
	}
	calldata, err := input.Calldata()
	if err != nil {
		log.Fatalln(err)
	}
	if _, err := hex.NewEncoder(os.Stdout).Write(calldata); err != nil {
		log.Fatalln(err)
	}
	fmt.Println()
}
