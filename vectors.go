// Package gkr implements a non-interactive GKR prover specialized to
// R1CS-encoded arithmetic circuits.
//
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// zeroVector returns a length-n vector of field zeros.
func zeroVector(n int) []Fr {
	res := make([]Fr, n)
	for i := range res {
		res[i] = frZero()
	}
	return res
}
