// Package gkr implements a non-interactive GKR prover specialized to
// R1CS-encoded arithmetic circuits.
//
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// MustRandScalar returns a uniformly random field element, for tests that
// need witnesses or challenge values without driving the real transcript.
// gnark-crypto's SetRandom reads crypto/rand.Reader internally.
func MustRandScalar() Fr {
	var z Fr
	if _, err := z.SetRandom(); err != nil {
		panic(err)
	}
	return z
}
