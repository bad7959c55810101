// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kitsne241/drift/expr"
)

func TestLinearize(t *testing.T) {
	a, b, c := NewLeaf("a"), NewLeaf("b"), NewLeaf("c")
	d, e := NewLeaf("d"), NewLeaf("e")
	prod := NewProduct(d, e)
	root := NewSum(a, NewSum(b, NewSum(c)), prod)

	lin := root.Linearize()
	assert.Equal(t, []*Node{a, b, c, prod}, lin)
	assert.Equal(t, lin, LinearizeUnits(Sum, lin))
	assert.Equal(t, []*Node{d, e}, prod.Linearize())

	// a linearized run does not own its units
	assert.Equal(t, root, a.Parent())
	assert.Equal(t, 3, root.NumChildren())
}

func TestLinearizeKeepsOtherKinds(t *testing.T) {
	x, y, z := NewLeaf("x"), NewLeaf("y"), NewLeaf("z")
	inner := NewSum(y, z)
	root := NewProduct(x, inner)
	assert.Equal(t, []*Node{x, inner}, root.Linearize())

	num, den := NewProduct(NewLeaf("2"), NewProduct(NewLeaf("a"))), NewLeaf("5")
	frac := NewFraction(num, den)
	assert.Equal(t, []*Node{num, den}, frac.Linearize())
	assert.Len(t, num.Linearize(), 2)
	assert.Empty(t, den.Linearize())
}

func TestLinearizeUnits(t *testing.T) {
	a, b := NewLeaf("a"), NewLeaf("b")
	p := NewProduct(a, b)
	assert.Equal(t, []*Node{a, b}, LinearizeUnits(Product, []*Node{p}))
	assert.Equal(t, []*Node{p}, LinearizeUnits(Sum, []*Node{p}))
	assert.Equal(t, []*Node{p}, LinearizeUnits(Fraction, []*Node{p}))
}
