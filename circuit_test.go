// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import "testing"

// scenario 1: x1*x1 - x2 = 0, witness x1=3, x2=9.
func TestCircuitTrivialConstraint(t *testing.T) {
	c := Constraint{
		A: []Term{{Coeff: frOne(), Wire: 1}},
		B: []Term{{Coeff: frOne(), Wire: 1}},
		C: []Term{{Coeff: frOne(), Wire: 2}},
	}
	circuit := Compile([]Constraint{c}, BuildOptions{})

	if circuit.Depth() < 2 {
		t.Fatalf("expected depth >= 2, got %d", circuit.Depth())
	}

	witness := []Fr{frOne(), bint(3), bint(9)}
	if err := CheckSatisfied(circuit, witness); err != nil {
		t.Fatalf("expected satisfied witness, got %v", err)
	}

	proof, err := Prove(circuit, witness)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if proof.Depth != circuit.Depth() {
		t.Fatalf("proof depth %d != circuit depth %d", proof.Depth, circuit.Depth())
	}
	if len(proof.SumcheckProofs) != proof.Depth {
		t.Fatalf("expected one sum-check invocation per interior layer")
	}
}

// scenario 2: 0*0 - (x1 - 5) = 0, witness x1=5. A and B carry no terms, so
// the builder must collapse the constraint to the (x1-5) subtree alone.
func TestCircuitEmptyAOperand(t *testing.T) {
	c := Constraint{
		C: []Term{
			{Coeff: frOne(), Wire: 1},
			{Coeff: minus(bint(5)), Wire: 0},
		},
	}
	circuit := Compile([]Constraint{c}, BuildOptions{})

	witness := []Fr{frOne(), bint(5)}
	if err := CheckSatisfied(circuit, witness); err != nil {
		t.Fatalf("expected satisfied witness, got %v", err)
	}

	levels, err := EvaluateWires(circuit, witness)
	if err != nil {
		t.Fatalf("EvaluateWires: %v", err)
	}
	for _, v := range levels[0] {
		if !isZero(v) {
			t.Fatalf("expected every output gate to be zero")
		}
	}
}

// scenario 3: a two-constraint chain, x1*x2-x3=0 and x3*x3-x4=0, witness
// (2,3,6,36).
func chainConstraints() []Constraint {
	return []Constraint{
		{
			A: []Term{{Coeff: frOne(), Wire: 1}},
			B: []Term{{Coeff: frOne(), Wire: 2}},
			C: []Term{{Coeff: frOne(), Wire: 3}},
		},
		{
			A: []Term{{Coeff: frOne(), Wire: 3}},
			B: []Term{{Coeff: frOne(), Wire: 3}},
			C: []Term{{Coeff: frOne(), Wire: 4}},
		},
	}
}

func TestCircuitTwoConstraintChain(t *testing.T) {
	circuit := Compile(chainConstraints(), BuildOptions{})
	witness := []Fr{frOne(), bint(2), bint(3), bint(6), bint(36)}

	if err := CheckSatisfied(circuit, witness); err != nil {
		t.Fatalf("expected satisfied witness, got %v", err)
	}

	proof, err := Prove(circuit, witness)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if len(proof.SumcheckProofs) != circuit.Depth() {
		t.Fatalf("expected exactly depth sum-check proofs, got %d for depth %d",
			len(proof.SumcheckProofs), circuit.Depth())
	}
}

// scenario 6: flipping one witness value in the chain must abort proving
// with ErrCircuitUnsatisfied and never return a partial proof.
func TestCircuitUnsatisfiedWitnessAborts(t *testing.T) {
	circuit := Compile(chainConstraints(), BuildOptions{})
	witness := []Fr{frOne(), bint(2), bint(3), bint(6), bint(37)} // 6*6 != 37

	if err := CheckSatisfied(circuit, witness); err == nil {
		t.Fatalf("expected CheckSatisfied to reject the flipped witness")
	}

	proof, err := Prove(circuit, witness)
	if err == nil {
		t.Fatalf("expected Prove to reject the flipped witness")
	}
	if proof != nil {
		t.Fatalf("expected no partial proof on failure")
	}
}

// scenario 4: MLE round-trip over a random-ish length-8 vector.
func TestMultilinearExtensionRoundTrip(t *testing.T) {
	v := []Fr{bint(5), bint(1), bint(9), bint(2), bint(7), bint(0), bint(3), bint(8)}
	mle := getMultiExt(v, 3)

	for idx, w := range generateBinaryString(3) {
		point := make([]Fr, 3)
		for i, ch := range w {
			if ch == '1' {
				point[i] = frOne()
			} else {
				point[i] = frZero()
			}
		}
		got := frZero()
		for _, t := range partialEval(mle, point) {
			got = add(got, t.Coeff)
		}
		if !equalFr(got, v[idx]) {
			t.Fatalf("MLE at %s = %s, want %s", w, DecimalString(got), DecimalString(v[idx]))
		}
	}
}

// scenario 5: proving the same circuit/witness twice must be byte-identical.
func TestProveDeterministic(t *testing.T) {
	circuit := Compile(chainConstraints(), BuildOptions{})
	witness := []Fr{frOne(), bint(2), bint(3), bint(6), bint(36)}

	p1, err := Prove(circuit, witness)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	p2, err := Prove(circuit, witness)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	for i := range p1.Z {
		for j := range p1.Z[i] {
			if !equalFr(p1.Z[i][j], p2.Z[i][j]) {
				t.Fatalf("layer %d challenge point differs across runs", i)
			}
		}
		if !equalFr(p1.R[i], p2.R[i]) {
			t.Fatalf("layer %d line-restriction challenge differs across runs", i)
		}
	}
}

func TestCircuitWiringBounds(t *testing.T) {
	circuit := Compile(chainConstraints(), BuildOptions{})
	for i, layer := range circuit.Layers {
		kNext := circuit.K(i + 1)
		bound := 1 << kNext
		for _, op := range layer.Operand {
			if op[0] >= bound || op[1] >= bound {
				t.Fatalf("layer %d operand %v out of bounds for k_next=%d", i, op, kNext)
			}
		}
		if len(layer.Gates) != 1<<circuit.K(i) {
			t.Fatalf("layer %d has %d gates, want a power of two", i, len(layer.Gates))
		}
	}
}
