// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import "github.com/ethereum/go-ethereum/crypto"

// mimc7Rounds is the round count for the MiMC-7 permutation over F_r. 91
// rounds is the standard circomlib parameter for BN254's scalar field.
const mimc7Rounds = 91

// mimc7Constants holds the round constants, derived once at package init
// time the same way circomlib seeds them: iterated Keccak-256 of a fixed
// seed string, each digest reduced into F_r. The first and last constants
// are fixed to zero, matching circomlib's convention so that feeding the
// same round constants forward and backward through the permutation stays
// symmetric.
var mimc7Constants = deriveMimc7Constants()

func deriveMimc7Constants() []Fr {
	c := make([]Fr, mimc7Rounds)
	seed := crypto.Keccak256([]byte("mimc7_seed"))
	for i := 1; i < mimc7Rounds-1; i++ {
		seed = crypto.Keccak256(seed)
		var b [32]byte
		copy(b[:], seed)
		c[i] = DecodeLE(b)
	}
	// c[0] and c[mimc7Rounds-1] stay at the zero value frZero provides by default.
	return c
}

// mimc7Permute applies the MiMC-7 round function x -> (x + k + c_i)^7 for
// each round constant c_i, with the round key k added every round.
func mimc7Permute(x, k Fr) Fr {
	for i := 0; i < mimc7Rounds; i++ {
		t := add(add(x, k), mimc7Constants[i])
		x = pow(t, 7)
	}
	return add(x, k)
}

// mimc7MultiHash folds a slice of field elements into one, circomlib-style:
// each element is permuted against the running state, then the running
// state absorbs both the input and the permutation output.
func mimc7MultiHash(inputs []Fr, key Fr) Fr {
	r := key
	for _, x := range inputs {
		h := mimc7Permute(x, r)
		r = add(r, add(x, h))
	}
	return r
}
