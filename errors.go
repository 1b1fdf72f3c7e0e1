// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import "errors"

// ErrCircuitUnsatisfied is returned when a witness does not drive every
// constraint gate of a compiled circuit to zero.
var ErrCircuitUnsatisfied = errors.New("gkr: witness does not satisfy the circuit")

// ErrEmptyProof is returned when Prove is asked to run on a circuit with no
// interior layers (nothing to sum-check).
var ErrEmptyProof = errors.New("gkr: circuit has no layers to prove")

// ErrWireOutOfRange is returned when a constraint or input expression
// references a witness wire past the end of the supplied assignment.
var ErrWireOutOfRange = errors.New("gkr: wire index out of range for witness")
