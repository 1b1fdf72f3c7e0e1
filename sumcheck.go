// Package gkr implements a non-interactive GKR prover specialized to
// R1CS-encoded arithmetic circuits.
//
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// ProveSumcheck runs the generic sum-check prover over the v-variable
// monomial-form polynomial g, returning the per-round coefficient vectors
// (high-degree first) and the challenges the transcript produced for them.
// It never assumes anything about g's sparsity, unlike ProveSumcheckOpt
// below, and is the entry point Prove uses for every layer.
func ProveSumcheck(g Poly, v int, tr *Transcript) ([][]Fr, []Fr) {
	proof := make([][]Fr, 0, v)
	r := make([]Fr, 0, v)

	for j := 0; j < v; j++ {
		gj := partialEval(g, r)
		remaining := v - j - 1

		var summed Poly
		if remaining == 0 {
			summed = gj
		} else {
			for _, assignment := range generateBinary(remaining) {
				sub := gj
				for i, xi := range assignment {
					sub = partialEvalI(sub, xi, i+1)
				}
				summed = addPoly(summed, sub)
			}
		}

		coeffs := getUnivariateCoeffPoly(summed, 0)
		proof = append(proof, coeffs)
		rj := tr.Challenge(coeffs)
		r = append(r, rj)
	}
	return proof, r
}

// ProveSumcheckOpt runs the binary-form sum-check for a v-variable
// genuinely multilinear polynomial f (at most one degree per tagged
// variable). It is the binary-form counterpart to ProveSumcheck and is
// valid when every term tags every variable as x_j or (1-x_j) — e.g. a raw
// wiring predicate on its own, with no witness values folded in yet. A
// variable left tagAbsent in a term is not summed over: that term counts
// once instead of twice per such variable. It must NOT be used for the GKR per-layer
// product itself: add_i(z,b,c)*(W(b)+W(c)) + mult_i(z,b,c)*W(b)*W(c) is
// degree 2 per variable once W is multiplied in (see buildLayerIntegrand),
// and a tagged term cannot represent that.
func ProveSumcheckOpt(f BinaryPoly, v int, tr *Transcript) ([][]Fr, []Fr) {
	proof := make([][]Fr, 0, v)
	r := make([]Fr, 0, v)

	cur := f
	for j := 0; j < v; j++ {
		coeffs := getUnivariateCoeffBinary(cur, j)
		proof = append(proof, coeffs)
		rj := tr.Challenge(coeffs)
		r = append(r, rj)
		cur = partialEvalIBinaryForm(cur, rj, j)
	}
	return proof, r
}

// buildLayerIntegrand assembles the true GKR per-layer polynomial
// add_i(z,b,c)*(W(b)+W(c)) + mult_i(z,b,c)*W(b)*W(c) in monomial form, over
// the 2*kNext variables (b, c). addI and multI carry kCur + 2*kNext tagged
// variables; z fixes the first kCur of them. The wiring factors fold in
// sparsely (partialEvalBinaryForm touches only addI/multI's own terms,
// never the (b,c) domain), but since the product with wNextPoly is degree 2
// per variable, it is expanded into the monomial engine — via
// binaryToMonomial — for the actual sum-check, rather than represented as a
// tagged term.
func buildLayerIntegrand(addI, multI BinaryPoly, z []Fr, kNext int, wNextPoly Poly) Poly {
	addMono := binaryToMonomial(partialEvalBinaryForm(addI, z))
	multMono := binaryToMonomial(partialEvalBinaryForm(multI, z))

	wb := appendZeroExponents(wNextPoly, kNext)
	wc := modifyPolyFromK(wNextPoly, kNext)
	wSum := addPoly(wb, wc)
	wProd := multPoly(wb, wc)

	return addPoly(multPoly(addMono, wSum), multPoly(multMono, wProd))
}

// evalBinaryPoly fully evaluates f at x, one field value per tagged
// variable.
func evalBinaryPoly(f BinaryPoly, x []Fr) Fr {
	res := frZero()
	for _, t := range partialEvalBinaryForm(f, x) {
		res = add(res, t.Coeff)
	}
	return res
}
