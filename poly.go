// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import "strconv"

// chiW builds the monomial-form Lagrange basis polynomial for the binary
// string w: the unique multilinear polynomial that is 1 at the Boolean
// point w encodes and 0 at every other Boolean point.
func chiW(w string) Poly {
	l := len(w)
	prodSingle := Term_{Coeff: frOne(), Exponents: make([]int, l)}

	var factors []Poly
	for i := 0; i < l; i++ {
		switch w[i] {
		case '0':
			negTerm := Term_{Coeff: minus(frOne()), Exponents: make([]int, l)}
			negTerm.Exponents[i] = 1
			oneTerm := Term_{Coeff: frOne(), Exponents: make([]int, l)}
			factors = append(factors, Poly{negTerm, oneTerm})
		case '1':
			prodSingle.Exponents[i] = 1
		}
	}

	res := Poly{prodSingle}
	for _, factor := range factors {
		next := make(Poly, 0, len(factor)*len(res))
		for _, term := range factor {
			for _, resTerm := range res {
				next = append(next, multMono(term, resTerm))
			}
		}
		res = next
	}
	return res
}

func multMono(t1, t2 Term_) Term_ {
	exps := make([]int, len(t1.Exponents))
	for i := range exps {
		exps[i] = t1.Exponents[i] + t2.Exponents[i]
	}
	return Term_{Coeff: mul(t1.Coeff, t2.Coeff), Exponents: exps}
}

// chiWForBinary builds the single-term binary-tagged representation of
// chi_w, used for the sparse add_i/mult_i wiring predicates: every variable
// is tagged x_i or (1-x_i) rather than expanded into separate monomials.
func chiWForBinary(w string) BinaryPoly {
	tags := make([]binaryTag, len(w))
	for i := 0; i < len(w); i++ {
		switch w[i] {
		case '0':
			tags[i] = tagOneMinusX
		case '1':
			tags[i] = tagX
		}
	}
	return BinaryPoly{{Coeff: frOne(), Tags: tags}}
}

// generateBinaryString returns every length-l bitstring in counting order.
func generateBinaryString(l int) []string {
	if l == 0 {
		return nil
	}
	res := []string{"0", "1"}
	for n := 1; n < l; n++ {
		next := make([]string, 0, len(res)*2)
		for _, s := range res {
			next = append(next, s+"0", s+"1")
		}
		res = next
	}
	return res
}

// generateBinary returns every length-l Boolean vector in counting order.
func generateBinary(l int) [][]Fr {
	if l == 0 {
		return nil
	}
	acc := [][]Fr{{frZero()}, {frOne()}}
	for n := 1; n < l; n++ {
		next := make([][]Fr, 0, len(acc)*2)
		for _, b := range acc {
			b0 := append(append([]Fr{}, b...), frZero())
			b1 := append(append([]Fr{}, b...), frOne())
			next = append(next, b0, b1)
		}
		acc = next
	}
	return acc
}

// partialEvalI substitutes x for variable i (0-indexed) in f, leaving every
// other variable's exponent untouched.
func partialEvalI(f Poly, x Fr, i int) Poly {
	res := make(Poly, len(f))
	for idx, t := range f {
		exps := append([]int{}, t.Exponents...)
		coeff := mul(t.Coeff, pow(x, exps[i]))
		exps[i] = 0
		res[idx] = Term_{Coeff: coeff, Exponents: exps}
	}
	return res
}

// partialEval substitutes r[0], r[1], ... for the first len(r) variables of
// f, in order, and drops those exponent slots from the result.
func partialEval(f Poly, r []Fr) Poly {
	if len(r) == 0 {
		return f
	}
	res := make(Poly, len(f))
	for idx, t := range f {
		coeff := t.Coeff
		for i, ri := range r {
			exp := t.Exponents[i]
			if exp == 0 {
				continue
			}
			coeff = mul(coeff, pow(ri, exp))
		}
		exps := append([]int{}, t.Exponents[len(r):]...)
		res[idx] = Term_{Coeff: coeff, Exponents: exps}
	}
	return res
}

// partialEvalIBinaryForm is partialEvalI's binary-tagged counterpart: tag i
// is resolved against x and then cleared.
func partialEvalIBinaryForm(f BinaryPoly, x Fr, i int) BinaryPoly {
	res := make(BinaryPoly, len(f))
	for idx, t := range f {
		tags := append([]binaryTag{}, t.Tags...)
		constant := t.Coeff
		switch tags[i] {
		case tagOneMinusX:
			constant = mul(constant, sub(frOne(), x))
		case tagX:
			constant = mul(constant, x)
		}
		tags[i] = tagAbsent
		res[idx] = BinaryTerm{Coeff: constant, Tags: tags}
	}
	return res
}

// partialEvalBinaryForm substitutes x[0], x[1], ... for the first len(x)
// tagged variables of f, in order, dropping those tags from the result.
func partialEvalBinaryForm(f BinaryPoly, x []Fr) BinaryPoly {
	res := make(BinaryPoly, len(f))
	for idx, t := range f {
		constant := t.Coeff
		for i, xi := range x {
			switch t.Tags[i] {
			case tagOneMinusX:
				constant = mul(constant, sub(frOne(), xi))
			case tagX:
				constant = mul(constant, xi)
			}
		}
		tags := append([]binaryTag{}, t.Tags[len(x):]...)
		res[idx] = BinaryTerm{Coeff: constant, Tags: tags}
	}
	return res
}

// evalUnivariate evaluates f, given high-degree coefficient first, at x via
// Horner's method.
func evalUnivariate(f []Fr, x Fr) Fr {
	res := f[0]
	for _, c := range f[1:] {
		res = add(mul(res, x), c)
	}
	return res
}

// modifyPolyFromK inserts k fresh, always-zero exponent slots at the front
// of every term of f, renumbering its variables so f can be summed against
// a polynomial with k additional leading variables.
func modifyPolyFromK(f Poly, k int) Poly {
	res := make(Poly, len(f))
	for idx, t := range f {
		exps := make([]int, 0, k+len(t.Exponents))
		exps = append(exps, make([]int, k)...)
		exps = append(exps, t.Exponents...)
		res[idx] = Term_{Coeff: t.Coeff, Exponents: exps}
	}
	return res
}

// appendZeroExponents inserts k fresh, always-zero exponent slots at the end
// of every term of f, renumbering nothing but making room for k additional
// trailing variables — the mirror of modifyPolyFromK, which inserts them at
// the front.
func appendZeroExponents(f Poly, k int) Poly {
	res := make(Poly, len(f))
	for idx, t := range f {
		exps := make([]int, 0, len(t.Exponents)+k)
		exps = append(exps, t.Exponents...)
		exps = append(exps, make([]int, k)...)
		res[idx] = Term_{Coeff: t.Coeff, Exponents: exps}
	}
	return res
}

// binaryToMonomial expands a fully-tagged binary-form polynomial into
// monomial form, one chi-basis-style expansion per term: a tagX factor
// contributes exponent 1 for that variable, a tagOneMinusX factor branches
// the term in two the same way chiW's (1-x_i) factors do. Used to carry
// add_i/mult_i into the monomial engine once their z-variables are folded
// in, since a tagged term can only represent degree <= 1 per variable and
// the GKR per-layer product needs degree 2.
func binaryToMonomial(f BinaryPoly) Poly {
	var res Poly
	for _, t := range f {
		terms := []Term_{{Coeff: t.Coeff, Exponents: make([]int, len(t.Tags))}}
		for i, tag := range t.Tags {
			switch tag {
			case tagX:
				for j := range terms {
					terms[j].Exponents[i] = 1
				}
			case tagOneMinusX:
				next := make([]Term_, 0, len(terms)*2)
				for _, term := range terms {
					plain := Term_{Coeff: term.Coeff, Exponents: append([]int{}, term.Exponents...)}
					neg := Term_{Coeff: minus(term.Coeff), Exponents: append([]int{}, term.Exponents...)}
					neg.Exponents[i] = 1
					next = append(next, plain, neg)
				}
				terms = next
			}
		}
		res = append(res, terms...)
	}
	return addPoly(res, nil)
}

func extendExponents(e []int, l int) []int {
	if len(e) >= l {
		return e
	}
	out := make([]int, l)
	copy(out, e)
	return out
}

func exponentsKey(e []int) string {
	var sb []byte
	for _, v := range e {
		sb = strconv.AppendInt(sb, int64(v), 10)
		sb = append(sb, ',')
	}
	return string(sb)
}

// addPoly returns f1 + f2, collapsing terms that share the same exponent
// vector and dropping any that cancel to zero.
func addPoly(f1, f2 Poly) Poly {
	maxLen := 0
	if len(f1) > 0 {
		maxLen = len(f1[0].Exponents)
	}
	if len(f2) > 0 && len(f2[0].Exponents) > maxLen {
		maxLen = len(f2[0].Exponents)
	}

	order := []string{}
	exps := map[string][]int{}
	coeffs := map[string]Fr{}
	absorb := func(t Term_) {
		e := extendExponents(t.Exponents, maxLen)
		key := exponentsKey(e)
		if c, ok := coeffs[key]; ok {
			coeffs[key] = add(c, t.Coeff)
		} else {
			coeffs[key] = t.Coeff
			exps[key] = e
			order = append(order, key)
		}
	}
	for _, t := range f1 {
		absorb(t)
	}
	for _, t := range f2 {
		absorb(t)
	}

	res := make(Poly, 0, len(order))
	for _, key := range order {
		c := coeffs[key]
		if isZero(c) {
			continue
		}
		res = append(res, Term_{Coeff: c, Exponents: exps[key]})
	}
	return res
}

// multPoly returns f1 * f2, expanded and collapsed the same way addPoly
// collapses its sum.
func multPoly(f1, f2 Poly) Poly {
	maxLen := 0
	if len(f1) > 0 {
		maxLen = len(f1[0].Exponents)
	}
	if len(f2) > 0 && len(f2[0].Exponents) > maxLen {
		maxLen = len(f2[0].Exponents)
	}

	order := []string{}
	exps := map[string][]int{}
	coeffs := map[string]Fr{}
	for _, t1 := range f1 {
		e1 := extendExponents(t1.Exponents, maxLen)
		for _, t2 := range f2 {
			e2 := extendExponents(t2.Exponents, maxLen)
			exp := make([]int, maxLen)
			for i := range exp {
				exp[i] = e1[i] + e2[i]
			}
			key := exponentsKey(exp)
			c := mul(t1.Coeff, t2.Coeff)
			if old, ok := coeffs[key]; ok {
				coeffs[key] = add(old, c)
			} else {
				coeffs[key] = c
				exps[key] = exp
				order = append(order, key)
			}
		}
	}

	res := make(Poly, 0, len(order))
	for _, key := range order {
		c := coeffs[key]
		if isZero(c) {
			continue
		}
		res = append(res, Term_{Coeff: c, Exponents: exps[key]})
	}
	return res
}

// getUnivariateCoeffPoly collects f's dependence on variable i into a
// dense, high-degree-first coefficient vector, for the monomial-form
// polynomial engine's sum-check round messages.
func getUnivariateCoeffPoly(f Poly, i int) []Fr {
	coeffs := []Fr{frZero()}
	for _, t := range f {
		deg := t.Exponents[i]
		for len(coeffs)-1 < deg {
			coeffs = append(coeffs, frZero())
		}
		coeffs[deg] = add(coeffs[deg], t.Coeff)
	}
	for l, r := 0, len(coeffs)-1; l < r; l, r = l+1, r-1 {
		coeffs[l], coeffs[r] = coeffs[r], coeffs[l]
	}
	return coeffs
}

// getUnivariateCoeffBinary is getUnivariateCoeffPoly's binary-tagged
// counterpart: since every tagged variable contributes degree at most one,
// the result is always the two coefficients [x^1, x^0].
func getUnivariateCoeffBinary(f BinaryPoly, i int) []Fr {
	c0, c1 := frZero(), frZero() // c0: coefficient of x^1, c1: constant term
	for _, t := range f {
		switch t.Tags[i] {
		case tagOneMinusX:
			c1 = add(c1, t.Coeff)
			c0 = add(c0, minus(t.Coeff))
		case tagX:
			c0 = add(c0, t.Coeff)
		}
	}
	return []Fr{c0, c1}
}

// multUnivariate multiplies two high-degree-first coefficient vectors.
func multUnivariate(p, q []Fr) []Fr {
	hDegP, hDegQ := len(p)-1, len(q)-1
	pRev := reverseFr(p)
	qRev := reverseFr(q)

	res := make([]Fr, hDegP+hDegQ+1)
	for i := range res {
		res[i] = frZero()
	}
	for i, pi := range pRev {
		for j, qi := range qRev {
			res[i+j] = add(res[i+j], mul(pi, qi))
		}
	}
	return reverseFr(res)
}

// addUnivariate adds two high-degree-first coefficient vectors of possibly
// different lengths.
func addUnivariate(p, q []Fr) []Fr {
	if len(p) == 0 {
		return q
	}
	if len(q) == 0 {
		return p
	}
	hDeg := len(p)
	if len(q) > hDeg {
		hDeg = len(q)
	}
	pRev := reverseFr(p)
	qRev := reverseFr(q)
	res := make([]Fr, hDeg)
	for i := 0; i < hDeg; i++ {
		switch {
		case i > len(p)-1:
			res[i] = qRev[i]
		case i > len(q)-1:
			res[i] = pRev[i]
		default:
			res[i] = add(pRev[i], qRev[i])
		}
	}
	return reverseFr(res)
}

func reverseFr(f []Fr) []Fr {
	res := make([]Fr, len(f))
	for i, v := range f {
		res[len(f)-1-i] = v
	}
	return res
}

// lFunction evaluates the affine line through b and c at parameter r,
// coordinate by coordinate: l(r) = b + r*(c - b).
func lFunction(b, c []Fr, r Fr) []Fr {
	res := make([]Fr, len(b))
	for i := range b {
		gradient := sub(c[i], b[i])
		res[i] = add(b[i], mul(gradient, r))
	}
	return res
}

// reduceMultiplePolynomial restricts the monomial-form polynomial w to the
// line through b and c, returning a single high-degree-first univariate
// coefficient vector in the line parameter t.
func reduceMultiplePolynomial(b, c []Fr, w Poly) []Fr {
	type lin struct{ intercept, gradient Fr }
	t := make([]lin, len(b))
	for i := range b {
		t[i] = lin{intercept: b[i], gradient: sub(c[i], b[i])}
	}

	res := []Fr{frZero()}
	for _, term := range w {
		newPoly := []Fr{term.Coeff}
		for idx, deg := range term.Exponents {
			line := []Fr{t[idx].gradient, t[idx].intercept}
			for d := 0; d < deg; d++ {
				newPoly = multUnivariate(newPoly, line)
			}
		}
		res = addUnivariate(res, newPoly)
	}
	return res
}

// getMultiExt builds the monomial-form multilinear extension of a value
// table of length 2^v: the unique multilinear polynomial agreeing with
// value at every length-v Boolean point.
func getMultiExt(value []Fr, v int) Poly {
	var res Poly
	for _, w := range generateBinaryString(v) {
		idx, err := strconv.ParseInt(w, 2, 64)
		if err != nil {
			panic("gkr: malformed binary string in getMultiExt: " + err.Error())
		}
		val := value[idx]
		if isZero(val) {
			continue
		}
		term := chiW(w)
		for i := range term {
			term[i].Coeff = mul(term[i].Coeff, val)
		}
		res = append(res, term...)
	}
	return res
}
