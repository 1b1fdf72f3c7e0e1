// Package gkr implements a non-interactive GKR prover specialized to
// R1CS-encoded arithmetic circuits.
//
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Fr is a BN254 scalar field element. All prover state is expressed over
// this field.
type Fr = fr.Element

func frZero() Fr {
	var z Fr
	return z
}

func frOne() Fr {
	var z Fr
	z.SetOne()
	return z
}

func bint(v int) Fr {
	var z Fr
	z.SetInt64(int64(v))
	return z
}

func bbool(v bool) Fr {
	if v {
		return bint(1)
	}
	return bint(0)
}

func add(x, y Fr) Fr {
	var z Fr
	z.Add(&x, &y)
	return z
}

func sub(x, y Fr) Fr {
	var z Fr
	z.Sub(&x, &y)
	return z
}

func mul(x, y Fr) Fr {
	var z Fr
	z.Mul(&x, &y)
	return z
}

func minus(x Fr) Fr {
	var z Fr
	z.Neg(&x)
	return z
}

func inv(x Fr) Fr {
	var z Fr
	z.Inverse(&x)
	return z
}

// pow raises x to a non-negative integer exponent. Sum-check degrees are
// small (bounded by the fan-in-2 gate structure), so repeated squaring
// over a plain int is enough; we don't need the general big.Int exponent
// form gnark-crypto's Exp offers.
func pow(x Fr, e int) Fr {
	z := frOne()
	base := x
	for e > 0 {
		if e&1 == 1 {
			z = mul(z, base)
		}
		base = mul(base, base)
		e >>= 1
	}
	return z
}

func isZero(x Fr) bool {
	return x.IsZero()
}

func equalFr(x, y Fr) bool {
	return x.Equal(&y)
}

// asInt recovers a small non-negative integer that was stored in a field
// element as an exponent or a loop index (add_i/mult_i tags, monomial
// exponents). It panics if the value does not fit in an int, which would
// indicate a malformed polynomial term rather than a recoverable error.
func asInt(x Fr) int {
	var b big.Int
	x.BigInt(&b)
	if !b.IsInt64() {
		panic("gkr: field element does not fit in a small integer")
	}
	return int(b.Int64())
}

// EncodeLE returns the canonical 32-byte little-endian representative of
// x, as required by spec.md section 3.
func EncodeLE(x Fr) [32]byte {
	be := x.Bytes()
	var le [32]byte
	for i := range be {
		le[i] = be[len(be)-1-i]
	}
	return le
}

// DecodeLE parses a canonical 32-byte little-endian representative back
// into a field element.
func DecodeLE(b [32]byte) Fr {
	var be [32]byte
	for i := range b {
		be[i] = b[len(b)-1-i]
	}
	var z Fr
	z.SetBytes(be[:])
	return z
}

// DecimalString renders x as an unsigned decimal string, matching the
// JSON output encoding named in spec.md section 6.
func DecimalString(x Fr) string {
	var b big.Int
	x.BigInt(&b)
	return b.String()
}
