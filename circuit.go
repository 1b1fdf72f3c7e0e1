// Package gkr implements a non-interactive GKR prover specialized to
// R1CS-encoded arithmetic circuits.
//
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// WidthLimit bounds how many neighboring constraint roots BuildOptions'
// common-subexpression pass will compare against each other; keeping CSE a
// local, windowed search instead of an all-pairs one is what makes it
// affordable on circuits with many thousands of constraints.
const WidthLimit = 20

// DepthLimit bounds how deep into a constraint root CSE is willing to
// descend before giving up on a subtree; past this depth the dedup payoff
// rarely covers the comparison cost.
const DepthLimit = 10

// BuildOptions configures Compile.
type BuildOptions struct {
	// CSE enables the windowed common-subexpression pass described above.
	CSE bool
}

// buildTermNodes turns one side of an R1CS constraint (a sparse linear
// combination) into one intermediateNode per term: a bare variable
// reference when its coefficient is 1, or coeff*variable otherwise.
func buildTermNodes(terms []Term) []*intermediateNode {
	nodes := make([]*intermediateNode, 0, len(terms))
	one := frOne()
	for _, t := range terms {
		if equalFr(t.Coeff, one) {
			nodes = append(nodes, valueNode(varExpr(t.Wire)))
			continue
		}
		left := valueNode(constExpr(t.Coeff))
		right := valueNode(varExpr(t.Wire))
		nodes = append(nodes, &intermediateNode{kind: nodeMult, left: left, right: right})
	}
	return nodes
}

// mergeNodes folds a flat list of sibling nodes into a balanced binary
// Add-tree, pairing nodes[2i] with nodes[2i+1] for i in [0, len(nodes)/2),
// merging the pairs recursively, and adding a leftover odd node at the root
// of that merged tree.
func mergeNodes(nodes []*intermediateNode) *intermediateNode {
	if len(nodes) == 0 {
		return zeroNode()
	}
	if len(nodes) == 1 {
		return nodes[0]
	}

	width := len(nodes) / 2
	merged := make([]*intermediateNode, 0, width)
	for i := 0; i < width; i++ {
		merged = append(merged, &intermediateNode{
			kind:  nodeAdd,
			left:  nodes[2*i],
			right: nodes[2*i+1],
		})
	}
	if len(nodes)%2 == 1 {
		sub := mergeNodes(merged)
		return &intermediateNode{kind: nodeAdd, left: sub, right: nodes[len(nodes)-1]}
	}
	return mergeNodes(merged)
}

// buildConstraintTree lowers one R1CS row <A,w>*<B,w> = <C,w> into the
// constraint tree (<A,w>*<B,w>) + (-1 * <C,w>), which the circuit must
// evaluate to zero. When A or B carries no terms, the product is
// identically zero and the row only constrains <C,w> = 0; the tree reduces
// to <C,w> itself, which must still come out to zero.
func buildConstraintTree(c Constraint) *intermediateNode {
	nodeA := buildTermNodes(c.A)
	nodeB := buildTermNodes(c.B)
	nodeC := buildTermNodes(c.C)

	if len(nodeA) == 0 || len(nodeB) == 0 {
		return mergeNodes(nodeC)
	}

	rootA := mergeNodes(nodeA)
	rootB := mergeNodes(nodeB)
	rootC := mergeNodes(nodeC)

	aTimesB := &intermediateNode{kind: nodeMult, left: rootA, right: rootB}
	minusOne := valueNode(constExpr(minus(frOne())))
	minusC := &intermediateNode{kind: nodeMult, left: rootC, right: minusOne}
	return &intermediateNode{kind: nodeAdd, left: aTimesB, right: minusC}
}

// cseWindow deduplicates structurally-equal constraint roots within a
// sliding window of WidthLimit neighbors, replacing later duplicates with
// the earlier pointer so the layering pass below counts and lays out one
// shared subtree instead of two identical ones. Only subtrees shallower
// than DepthLimit are compared, since deep trees rarely recur verbatim and
// the comparison itself is O(depth).
func cseWindow(nodes []*intermediateNode) []*intermediateNode {
	res := make([]*intermediateNode, len(nodes))
	copy(res, nodes)
	for i := range res {
		if res[i].depth() >= DepthLimit {
			continue
		}
		lo := i - WidthLimit
		if lo < 0 {
			lo = 0
		}
		for j := lo; j < i; j++ {
			if res[j].depth() >= DepthLimit {
				continue
			}
			if res[i].equal(res[j]) {
				res[i] = res[j]
				break
			}
		}
	}
	return res
}

// dedupValue resolves one Value-kind node into the layer's Add-with-zero
// wiring: if this expression has already been placed in next, point back
// at it; otherwise allocate a fresh slot (and the shared zero slot, if this
// is the first dedup miss this layer) and place it there. Expressions that
// are literally the constant zero never need a real slot of their own;
// they point directly at the zero slot.
func dedupValue(e expression, used map[exprKey]int, next *[]*intermediateNode, zeroIndex *int) [2]int {
	key := e.key()
	if idx, ok := used[key]; ok {
		return [2]int{idx, *zeroIndex}
	}
	if *zeroIndex == -1 {
		*zeroIndex = len(*next)
		*next = append(*next, zeroNode())
	}
	if e.kind == exprConst && isZero(e.value) {
		used[key] = *zeroIndex
		return [2]int{*zeroIndex, *zeroIndex}
	}
	idx := len(*next)
	used[key] = idx
	*next = append(*next, valueNode(e))
	return [2]int{idx, *zeroIndex}
}

// Compile lowers a set of R1CS constraints into a layered arithmetic
// circuit: one constraint tree per row, merged into balanced layers from
// the output (layer 0, one gate per constraint) down to an input layer of
// deduplicated leaf values.
func Compile(constraints []Constraint, opts BuildOptions) *LayeredCircuit {
	nodes := make([]*intermediateNode, len(constraints))
	for i, c := range constraints {
		nodes[i] = buildConstraintTree(c)
	}
	if opts.CSE {
		nodes = cseWindow(nodes)
	}
	return compileNodes(nodes)
}

func compileNodes(nodes []*intermediateNode) *LayeredCircuit {
	if len(nodes) == 0 {
		return &LayeredCircuit{}
	}
	height := 0
	for _, n := range nodes {
		if d := n.depth(); d > height {
			height = d
		}
	}
	if height == 0 {
		return &LayeredCircuit{}
	}

	var layers []IntermediateLayer
	used := map[exprKey]int{}
	current := append([]*intermediateNode{}, nodes...)
	zeroIndex := -1

	for d := 0; d < height; d++ {
		k := ceilLog2(len(current))
		full := 1 << k
		for len(current) < full {
			current = append(current, zeroNode())
		}

		var gates []nodeKind
		var operand [][2]int
		var next []*intermediateNode

		if d == height-1 {
			for _, n := range current {
				if n.kind != nodeValue {
					panic("gkr: Unsupported: layer adjacent to the input must hold only leaf values")
				}
				gates = append(gates, nodeAdd)
				operand = append(operand, dedupValue(n.value, used, &next, &zeroIndex))
			}
		} else {
			for _, n := range current {
				switch n.kind {
				case nodeMult, nodeAdd:
					gates = append(gates, n.kind)
					idx := [2]int{-1, -1}
					for c, child := range []*intermediateNode{n.left, n.right} {
						for j, m := range next {
							if m.equal(child) {
								idx[c] = j
								break
							}
						}
						if idx[c] == -1 {
							idx[c] = len(next)
							next = append(next, child)
						}
					}
					operand = append(operand, idx)
				case nodeValue:
					gates = append(gates, nodeAdd)
					operand = append(operand, dedupValue(n.value, used, &next, &zeroIndex))
				}
			}
		}

		layers = append(layers, IntermediateLayer{Gates: gates, Operand: operand})
		zeroIndex = -1
		used = map[exprKey]int{}
		current = next
	}

	for len(current) < 1<<ceilLog2(len(current)) {
		current = append(current, zeroNode())
	}
	input := make([]expression, len(current))
	for i, n := range current {
		input[i] = n.value
	}

	return &LayeredCircuit{Layers: layers, Input: input}
}

// BuildWiring constructs the add_i/mult_i wiring-predicate MLEs (binary
// form) for every interior layer of circuit, one goroutine per layer.
func BuildWiring(circuit *LayeredCircuit) ([]BinaryPoly, []BinaryPoly, error) {
	n := len(circuit.Layers)
	adds := make([]BinaryPoly, n)
	mults := make([]BinaryPoly, n)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			adds[i], mults[i] = buildLayerWiring(circuit, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return adds, mults, nil
}

func buildLayerWiring(circuit *LayeredCircuit, i int) (add, mult BinaryPoly) {
	kCur := circuit.K(i)
	kNext := circuit.K(i + 1)
	v := kCur + 2*kNext

	layer := circuit.Layers[i]
	for _, b := range generateBinaryString(v) {
		curr := parseBinaryIndex(b[:kCur])
		if curr >= len(layer.Gates) {
			continue
		}
		nextLeft := parseBinaryIndex(b[kCur : kCur+kNext])
		nextRight := parseBinaryIndex(b[kCur+kNext:])
		if layer.Operand[curr][0] != nextLeft || layer.Operand[curr][1] != nextRight {
			continue
		}
		switch layer.Gates[curr] {
		case nodeAdd:
			add = append(add, chiWForBinary(b)...)
		case nodeMult:
			mult = append(mult, chiWForBinary(b)...)
		}
	}
	return add, mult
}

func parseBinaryIndex(b string) int {
	if b == "" {
		return 0
	}
	v, err := strconv.ParseInt(b, 2, 64)
	if err != nil {
		panic("gkr: malformed binary index string: " + err.Error())
	}
	return int(v)
}
