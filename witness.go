// Package gkr implements a non-interactive GKR prover specialized to
// R1CS-encoded arithmetic circuits.
//
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import "fmt"

// EvaluateWires propagates a witness assignment through circuit, bottom up
// from the input layer, and returns one value table per level:
// values[0] is the output layer (layer 0's gate outputs, which a satisfied
// circuit drives to all-zero), ..., values[len-1] is the input layer.
func EvaluateWires(circuit *LayeredCircuit, witness []Fr) ([][]Fr, error) {
	input := make([]Fr, len(circuit.Input))
	for i, e := range circuit.Input {
		switch e.kind {
		case exprConst:
			input[i] = e.value
		case exprVariable:
			if int(e.wire) >= len(witness) {
				return nil, fmt.Errorf("%w: wire %d, witness length %d", ErrWireOutOfRange, e.wire, len(witness))
			}
			input[i] = witness[e.wire]
		}
	}

	levels := [][]Fr{input}
	for i := len(circuit.Layers) - 1; i >= 0; i-- {
		layer := circuit.Layers[i]
		prev := levels[len(levels)-1]
		out := make([]Fr, len(layer.Gates))
		for g, kind := range layer.Gates {
			l := prev[layer.Operand[g][0]]
			r := prev[layer.Operand[g][1]]
			switch kind {
			case nodeAdd:
				out[g] = add(l, r)
			case nodeMult:
				out[g] = mul(l, r)
			}
		}
		levels = append(levels, out)
	}

	for l, r := 0, len(levels)-1; l < r; l, r = l+1, r-1 {
		levels[l], levels[r] = levels[r], levels[l]
	}
	return levels, nil
}

// CheckSatisfied evaluates circuit against witness and reports
// ErrCircuitUnsatisfied if any output gate is nonzero.
func CheckSatisfied(circuit *LayeredCircuit, witness []Fr) error {
	levels, err := EvaluateWires(circuit, witness)
	if err != nil {
		return err
	}
	for _, v := range levels[0] {
		if !isZero(v) {
			return ErrCircuitUnsatisfied
		}
	}
	return nil
}

// MultilinearExtensions builds the monomial-form MLE of every level
// EvaluateWires returned: W_0 (the output, D in the proof) through W_depth
// (the input layer).
func MultilinearExtensions(levels [][]Fr) []Poly {
	res := make([]Poly, len(levels))
	for i, v := range levels {
		res[i] = getMultiExt(v, ceilLog2(len(v)))
	}
	return res
}

// PublicOutputs maps each named public signal to its decimal-string value,
// reading wire i+1's value out of witness and its name out of names (the
// order ParseSymbols returns, one name per public wire).
func PublicOutputs(witness []Fr, names []string) (map[string]string, error) {
	res := make(map[string]string, len(names))
	for i, name := range names {
		wire := i + 1
		if wire >= len(witness) {
			return nil, fmt.Errorf("%w: public wire %d, witness length %d", ErrWireOutOfRange, wire, len(witness))
		}
		res[name] = DecimalString(witness[wire])
	}
	return res, nil
}
