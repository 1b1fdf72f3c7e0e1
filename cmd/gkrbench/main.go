// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gkrbench proves a small fixed R1CS instance and reports the
// resulting proof's dimensions. It exists to give the library a real
// external caller, not to serve as a general-purpose CLI.
package main

import (
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/jeong0982/gkr"
)

func fv(v uint64) gkr.Fr {
	var x fr.Element
	x.SetUint64(v)
	return x
}

// chain builds x1*x2-x3=0, x3*x3-x4=0 — a two-constraint multiplication
// chain deep enough to exercise more than one GKR layer.
func chain() []gkr.Constraint {
	one := fv(1)
	return []gkr.Constraint{
		{
			A: []gkr.Term{{Coeff: one, Wire: 1}},
			B: []gkr.Term{{Coeff: one, Wire: 2}},
			C: []gkr.Term{{Coeff: one, Wire: 3}},
		},
		{
			A: []gkr.Term{{Coeff: one, Wire: 3}},
			B: []gkr.Term{{Coeff: one, Wire: 3}},
			C: []gkr.Term{{Coeff: one, Wire: 4}},
		},
	}
}

func main() {
	circuit := gkr.Compile(chain(), gkr.BuildOptions{CSE: true})
	witness := []gkr.Fr{fv(1), fv(2), fv(3), fv(6), fv(36)}

	if err := gkr.CheckSatisfied(circuit, witness); err != nil {
		fmt.Fprintf(os.Stderr, "witness does not satisfy the circuit: %v\n", err)
		os.Exit(1)
	}

	proof, err := gkr.Prove(circuit, witness)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prove: %v\n", err)
		os.Exit(1)
	}

	adapted := gkr.AdaptForCircom(proof)
	fmt.Fprintf(os.Stderr, "circuit depth: %d\n", circuit.Depth())
	fmt.Fprintf(os.Stderr, "sum-check layers: %d\n", len(proof.SumcheckProofs))
	fmt.Fprintf(os.Stderr, "meta: %v\n", []int(adapted.Meta))
}
