// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestChiWIsBooleanIndicator(t *testing.T) {
	f := chiW("101")
	for _, w := range generateBinaryString(3) {
		point := make([]Fr, 3)
		for i, ch := range w {
			if ch == '1' {
				point[i] = frOne()
			}
		}
		got := frZero()
		for _, t := range partialEval(f, point) {
			got = add(got, t.Coeff)
		}
		want := frZero()
		if w == "101" {
			want = frOne()
		}
		if !equalFr(got, want) {
			t.Fatalf("chi_w(101) at %s = %s, want %s", w, DecimalString(got), DecimalString(want))
		}
	}
}

func TestChiWForBinaryMatchesMonomialForm(t *testing.T) {
	mono := chiW("01")
	bin := chiWForBinary("01")
	spew.Dump(bin)

	for _, w := range generateBinaryString(2) {
		point := make([]Fr, 2)
		for i, ch := range w {
			if ch == '1' {
				point[i] = frOne()
			}
		}
		monoVal := frZero()
		for _, t := range partialEval(mono, point) {
			monoVal = add(monoVal, t.Coeff)
		}
		binVal := evalBinaryPoly(bin, point)
		if !equalFr(monoVal, binVal) {
			t.Fatalf("monomial and binary chi_w disagree at %s", w)
		}
	}
}

func TestPartialEvalCommutesAcrossCalls(t *testing.T) {
	f := Poly{
		{Coeff: frOne(), Exponents: []int{1, 1, 1}},
		{Coeff: bint(3), Exponents: []int{2, 0, 1}},
	}
	a, b := bint(2), bint(5)

	direct := partialEval(f, []Fr{a, b})
	stepwise := partialEvalI(f, a, 0)
	stepwise = partialEvalI(stepwise, b, 1)

	if len(direct) != len(stepwise) {
		t.Fatalf("length mismatch between direct and stepwise partial eval")
	}
	for i := range direct {
		if !equalFr(direct[i].Coeff, stepwise[i].Coeff) {
			t.Fatalf("partial_eval does not commute with two partial_eval_i calls")
		}
	}
}

func TestReduceMultiplePolynomialEndpoints(t *testing.T) {
	v := []Fr{bint(1), bint(2), bint(3), bint(4)}
	w := getMultiExt(v, 2)

	b := []Fr{frZero(), frOne()}
	c := []Fr{frOne(), frZero()}
	q := reduceMultiplePolynomial(b, c, w)

	wAtB := frZero()
	for _, t := range partialEval(w, b) {
		wAtB = add(wAtB, t.Coeff)
	}
	wAtC := frZero()
	for _, t := range partialEval(w, c) {
		wAtC = add(wAtC, t.Coeff)
	}

	if got := evalUnivariate(q, frZero()); !equalFr(got, wAtB) {
		t.Fatalf("q(0) = %s, want W(b) = %s", DecimalString(got), DecimalString(wAtB))
	}
	if got := evalUnivariate(q, frOne()); !equalFr(got, wAtC) {
		t.Fatalf("q(1) = %s, want W(c) = %s", DecimalString(got), DecimalString(wAtC))
	}
}

func TestGetUnivariateCoeffBinary(t *testing.T) {
	f := BinaryPoly{
		{Coeff: bint(3), Tags: []binaryTag{tagX, tagOneMinusX}},
		{Coeff: bint(2), Tags: []binaryTag{tagOneMinusX, tagX}},
	}
	coeffs := getUnivariateCoeffBinary(f, 0)
	if len(coeffs) != 2 {
		t.Fatalf("expected 2 coefficients for a binary-tagged variable")
	}
	got0 := evalUnivariate(coeffs, frZero())
	got1 := evalUnivariate(coeffs, frOne())

	full0 := evalBinaryPoly(f, []Fr{frZero(), frZero()})
	full0 = add(full0, evalBinaryPoly(f, []Fr{frZero(), frOne()}))
	full1 := evalBinaryPoly(f, []Fr{frOne(), frZero()})
	full1 = add(full1, evalBinaryPoly(f, []Fr{frOne(), frOne()}))

	if !equalFr(got0, full0) {
		t.Fatalf("round message at 0 disagrees with direct summation")
	}
	if !equalFr(got1, full1) {
		t.Fatalf("round message at 1 disagrees with direct summation")
	}
}
