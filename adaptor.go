// Package gkr implements a non-interactive GKR prover specialized to
// R1CS-encoded arithmetic circuits.
//
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// Meta is the fixed-shape dimension vector a downstream fixed-circuit
// verifier needs to size every array in an AdaptedProof ahead of time.
// Field order matches the original aggregator's meta layout exactly:
//
//	[0] total levels (interior layers + input layer)
//	[1] largest k across every level
//	[2] k of the output layer (k[0])
//	[3] number of terms in D
//	[4] largest round-message length across every sum-check round
//	[5] largest number of terms among the q_i line-restrictions
//	[6] number of terms in InputFunc
//	[7] k of the input layer (the last entry of K)
//	[8] largest number of terms among add_i
//	[9] largest number of tagged variables among add_i/mult_i terms
//	[10] largest number of terms among mult_i
//	[11:] K, verbatim
type Meta []int

// BuildMeta derives p's Meta vector.
func BuildMeta(p *Proof) Meta {
	largestK := 0
	for _, k := range p.K {
		if k > largestK {
			largestK = k
		}
	}

	largestDeg := 0
	for _, layer := range p.SumcheckProofs {
		for _, round := range layer {
			if len(round) > largestDeg {
				largestDeg = len(round)
			}
		}
	}

	largestTermsQ := 0
	for _, q := range p.Q {
		if len(q) > largestTermsQ {
			largestTermsQ = len(q)
		}
	}

	lAdd, lMult, lVar := 0, 0, 0
	for _, layer := range p.Add {
		if len(layer) > lAdd {
			lAdd = len(layer)
		}
		for _, t := range layer {
			if len(t.Tags) > lVar {
				lVar = len(t.Tags)
			}
		}
	}
	for _, layer := range p.Mult {
		if len(layer) > lMult {
			lMult = len(layer)
		}
		for _, t := range layer {
			if len(t.Tags) > lVar {
				lVar = len(t.Tags)
			}
		}
	}

	meta := Meta{
		len(p.K), largestK, p.K[0], len(p.D), largestDeg,
		largestTermsQ, len(p.InputFunc), p.K[len(p.K)-1], lAdd, lVar, lMult,
	}
	return append(meta, p.K...)
}

// AdaptedProof is Proof reshaped into the rectangular, zero-padded arrays a
// fixed-size downstream verifying circuit expects: every ragged dimension
// (round-message length, term count, tagged-variable count, ...) is padded
// out to the bound BuildMeta reports, so every layer's arrays share the
// same shape.
type AdaptedProof struct {
	Meta           Meta
	SumcheckProofs [][][]Fr // [layer][round][coeff], coeff left-padded, round count right-padded
	SumcheckR      [][]Fr   // [layer][round], right-padded
	Q              [][]Fr   // [layer][coeff], left-padded
	FRes           []Fr
	D              [][]Fr // [term][coeff, exponents...]
	Z              [][]Fr // [layer][coord], right-padded
	R              []Fr
	InputFunc      [][]Fr   // [term][coeff, exponents...]
	Add            [][][]Fr // [layer][term][tag as 0/1/2], term right-padded, tag vector right-padded
	Mult           [][][]Fr // same shape as Add
}

// AdaptForCircom reshapes p into its padded, fixed-shape form for a
// downstream arithmetic-circuit verifier. Coefficient vectors (sum-check
// round messages, q_i) are high-degree-first, so padding goes on the left:
// a leading run of zero coefficients represents an unused high degree
// without disturbing the constant term's position. Everything else —
// evaluation points and per-variable tag patterns, which have no notion of
// "significant digit" — is padded on the right by appending zeros/defaults
// past the real data.
func AdaptForCircom(p *Proof) *AdaptedProof {
	meta := BuildMeta(p)
	largestK, largestDeg, largestTermsQ := meta[1], meta[4], meta[5]
	lAdd, lVar, lMult := meta[8], meta[9], meta[10]
	rounds := 2 * largestK

	sumcheckProofs := make([][][]Fr, len(p.SumcheckProofs))
	for i, layer := range p.SumcheckProofs {
		padded := make([][]Fr, 0, rounds)
		for _, round := range layer {
			padded = append(padded, padLeft(round, largestDeg))
		}
		for len(padded) < rounds {
			padded = append(padded, zeroVector(largestDeg))
		}
		sumcheckProofs[i] = padded
	}

	sumcheckR := make([][]Fr, len(p.SumcheckR))
	for i, layer := range p.SumcheckR {
		sumcheckR[i] = padRight(layer, rounds)
	}

	q := make([][]Fr, len(p.Q))
	for i, layer := range p.Q {
		q[i] = padLeft(layer, largestTermsQ)
	}

	z := make([][]Fr, len(p.Z))
	for i, layer := range p.Z {
		z[i] = padRight(layer, largestK)
	}

	add := adaptWiring(p.Add, lAdd, lVar)
	mult := adaptWiring(p.Mult, lMult, lVar)

	return &AdaptedProof{
		Meta:           meta,
		SumcheckProofs: sumcheckProofs,
		SumcheckR:      sumcheckR,
		Q:              q,
		FRes:           p.FRes,
		D:              polyToRows(p.D),
		Z:              z,
		R:              p.R,
		InputFunc:      polyToRows(p.InputFunc),
		Add:            add,
		Mult:           mult,
	}
}

func adaptWiring(layers []BinaryPoly, termBound, varBound int) [][][]Fr {
	res := make([][][]Fr, len(layers))
	for i, layer := range layers {
		terms := make([][]Fr, 0, termBound)
		for _, t := range layer {
			terms = append(terms, padRight(tagsToFr(t.Tags), varBound))
		}
		for len(terms) < termBound {
			terms = append(terms, zeroVector(varBound))
		}
		res[i] = terms
	}
	return res
}

// tagsToFr encodes a BinaryTerm's tags as field elements using spec.md's
// 0 (absent) / 1 ((1-x)) / 2 (x) convention.
func tagsToFr(tags []binaryTag) []Fr {
	res := make([]Fr, len(tags))
	for i, t := range tags {
		res[i] = bint(int(t))
	}
	return res
}

// polyToRows encodes a monomial-form Poly as [coeff, e_1, ..., e_v] rows,
// the canonical term encoding the original aggregator also ships.
func polyToRows(f Poly) [][]Fr {
	res := make([][]Fr, len(f))
	for i, t := range f {
		row := make([]Fr, 0, 1+len(t.Exponents))
		row = append(row, t.Coeff)
		for _, e := range t.Exponents {
			row = append(row, bint(e))
		}
		res[i] = row
	}
	return res
}

func padLeft(v []Fr, n int) []Fr {
	if len(v) >= n {
		return v
	}
	res := make([]Fr, n)
	for i := 0; i < n-len(v); i++ {
		res[i] = frZero()
	}
	copy(res[n-len(v):], v)
	return res
}

func padRight(v []Fr, n int) []Fr {
	if len(v) >= n {
		return v
	}
	res := make([]Fr, n)
	copy(res, v)
	for i := len(v); i < n; i++ {
		res[i] = frZero()
	}
	return res
}
