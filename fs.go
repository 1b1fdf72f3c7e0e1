// Package gkr implements a non-interactive GKR prover specialized to
// R1CS-encoded arithmetic circuits.
//
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// Transcript is the Fiat-Shamir engine sum-check and the GKR prover use to
// derive verifier challenges non-interactively. Every call hashes its
// coefficients under MiMC-7 with a fixed zero key — no other state
// influences them, so an external verifier can reproduce every challenge
// from the proof's own coefficients alone.
type Transcript struct{}

// NewTranscript starts a fresh transcript. It carries no state: Challenge
// is a pure function of the coefficients it's given.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Challenge returns MiMC7.multi_hash(coeffs, key=0).
func (t *Transcript) Challenge(coeffs []Fr) Fr {
	return mimc7MultiHash(coeffs, frZero())
}
