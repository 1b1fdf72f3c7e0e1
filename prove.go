// Package gkr implements a non-interactive GKR prover specialized to
// R1CS-encoded arithmetic circuits.
//
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// Prove runs the full non-interactive GKR protocol over circuit with the
// given witness: it checks satisfaction, builds the wiring predicates,
// evaluates every layer, and sum-checks its way from the output layer down
// to the input layer, binding every challenge with a single Fiat-Shamir
// transcript so the whole proof is one deterministic function of the
// witness.
func Prove(circuit *LayeredCircuit, witness []Fr) (*Proof, error) {
	if circuit.Depth() == 0 {
		return nil, ErrEmptyProof
	}
	if err := CheckSatisfied(circuit, witness); err != nil {
		return nil, err
	}

	levels, err := EvaluateWires(circuit, witness)
	if err != nil {
		return nil, err
	}
	mles := MultilinearExtensions(levels)

	addWiring, multWiring, err := BuildWiring(circuit)
	if err != nil {
		return nil, err
	}

	depth := circuit.Depth()
	proof := &Proof{
		SumcheckProofs: make([][][]Fr, depth),
		SumcheckR:      make([][]Fr, depth),
		FRes:           make([]Fr, depth),
		D:              mles[0],
		Q:              make([][]Fr, depth),
		Z:              make([][]Fr, depth),
		R:              make([]Fr, depth),
		Depth:          depth,
		InputFunc:      mles[depth],
		Add:            addWiring,
		Mult:           multWiring,
		K:              make([]int, depth+1),
	}
	for i := 0; i <= depth; i++ {
		proof.K[i] = circuit.K(i)
	}

	tr := NewTranscript()

	// z_0 := 0^{k_0}: the output layer's opening point is fixed, not
	// transcript-derived.
	z := make([]Fr, circuit.K(0))
	for i := range z {
		z[i] = frZero()
	}

	for i := 0; i < depth; i++ {
		kNext := circuit.K(i + 1)
		wNextPoly := mles[i+1]

		integrand := buildLayerIntegrand(addWiring[i], multWiring[i], z, kNext, wNextPoly)
		roundProof, r := ProveSumcheck(integrand, 2*kNext, tr)

		bStar := r[:kNext]
		cStar := r[kNext:]

		q := reduceMultiplePolynomial(bStar, cStar, wNextPoly)
		rStar := tr.Challenge(q)

		qAt0 := evalUnivariate(q, frZero())
		qAt1 := evalUnivariate(q, frOne())
		addAtZBC := evalBinaryPoly(addWiring[i], append(append([]Fr{}, z...), r...))
		multAtZBC := evalBinaryPoly(multWiring[i], append(append([]Fr{}, z...), r...))
		fRes := add(mul(addAtZBC, add(qAt0, qAt1)), mul(multAtZBC, mul(qAt0, qAt1)))

		proof.SumcheckProofs[i] = roundProof
		proof.SumcheckR[i] = r
		proof.FRes[i] = fRes
		proof.Q[i] = q
		proof.Z[i] = z
		proof.R[i] = rStar

		z = lFunction(bStar, cStar, rStar)
	}

	return proof, nil
}
