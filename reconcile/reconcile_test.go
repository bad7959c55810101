// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reconcile

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/core/math32"
	"github.com/kitsne241/drift/expr"
	"github.com/kitsne241/drift/render"
)

func box(i int) math32.Box2 {
	x := float32(10 * i)
	return math32.B2(x, 0, x+8, 10)
}

func TestReconcileByHand(t *testing.T) {
	root := expr.NewSum(expr.NewProduct(expr.NewLeaf("2"), expr.NewLeaf("a")), expr.NewLeaf("+"), expr.NewLeaf("3"))
	s := render.NewFlat(
		render.NewFlat(render.NewAtomic("2", box(0)), render.NewAtomic("a", box(1))),
		render.NewAtomic("+", box(2)),
		render.NewAtomic("3", box(3)),
	)
	require.NoError(t, Reconcile(root, s))
	for i, leaf := range root.Leaves() {
		assert.True(t, leaf.IsMeasured())
		b, ok := leaf.Bounds()
		assert.True(t, ok)
		assert.Equal(t, box(i), b)
	}
	bb, err := root.ComputeBounds()
	require.NoError(t, err)
	assert.Equal(t, math32.B2(0, 0, 38, 10), bb)
}

func TestReconcileLinearized(t *testing.T) {
	// Sum[a, Sum[+, b]] renders as one run
	root := expr.NewSum(expr.NewLeaf("a"), expr.NewSum(expr.NewLeaf("+"), expr.NewLeaf("b")))
	s := render.NewFlat(render.NewAtomic("a", box(0)), render.NewAtomic("+", box(1)), render.NewAtomic("b", box(2)))
	require.NoError(t, Reconcile(root, s))
	bb, err := root.Child(1).ComputeBounds()
	require.NoError(t, err)
	assert.Equal(t, math32.B2(10, 0, 28, 10), bb)
}

func TestReconcileSingleUnit(t *testing.T) {
	x := expr.NewLeaf("x")
	root := expr.NewSum(expr.NewProduct(x))
	require.NoError(t, Reconcile(root, render.NewAtomic("x", box(4))))
	bb, err := root.ComputeBounds()
	require.NoError(t, err)
	assert.Equal(t, box(4), bb)

	frac := expr.NewFraction(expr.NewProduct(expr.NewLeaf("a"), expr.NewLeaf("b")), expr.NewSum(expr.NewCaret()))
	s := render.NewTwoSlot(render.NewFlat(render.NewAtomic("a", box(0)), render.NewAtomic("b", box(1))), render.NewAtomic("", box(2)))
	require.NoError(t, Reconcile(frac, s))
}

func TestMismatch(t *testing.T) {
	tests := []struct {
		name string
		root *expr.Node
		s    *render.Structure
		path string
	}{
		{"leaf kind", expr.NewSum(expr.NewLeaf("a"), expr.NewLeaf("b")),
			render.NewFlat(render.NewAtomic("a", box(0)), render.NewFlat()), "/[1]"},
		{"text", expr.NewSum(expr.NewLeaf("a"), expr.NewLeaf("b")),
			render.NewFlat(render.NewAtomic("a", box(0)), render.NewAtomic("c", box(1))), "/[1]"},
		{"count", expr.NewSum(expr.NewLeaf("a"), expr.NewLeaf("b")),
			render.NewFlat(render.NewAtomic("a", box(0))), "/"},
		{"fraction kind", expr.NewFraction(expr.NewLeaf("1"), expr.NewLeaf("2")),
			render.NewFlat(render.NewAtomic("1", box(0)), render.NewAtomic("2", box(1))), "/"},
		{"container kind", expr.NewProduct(expr.NewLeaf("1"), expr.NewLeaf("2")),
			render.NewTwoSlot(render.NewAtomic("1", box(0)), render.NewAtomic("2", box(1))), "/"},
		{"missing", expr.NewFraction(expr.NewLeaf("1"), expr.NewLeaf("2")),
			&render.Structure{Kind: render.TwoSlot, Children: []*render.Structure{render.NewAtomic("1", box(0)), nil}}, "/[1]"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Reconcile(test.root, test.s)
			require.ErrorIs(t, err, ErrStructuralMismatch)
			var me *MismatchError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, test.path, me.Path)
			assert.Equal(t, test.root.FindPath(test.path), me.Node)
			assert.NotEmpty(t, me.Reason)
		})
	}
}

func TestMismatchClearsGeometry(t *testing.T) {
	root := expr.Sample()
	l := render.NewLayout()
	_, err := Render(root, l)
	require.NoError(t, err)
	_, err = root.ComputeBounds()
	require.NoError(t, err)

	// a late third term is not part of the old layout
	s, err := l.Render(root.Code())
	require.NoError(t, err)
	require.NoError(t, root.InsertChild(expr.NewLeaf("x"), -1))
	err = Reconcile(root, s)
	assert.ErrorIs(t, err, ErrStructuralMismatch)
	root.WalkDown(func(k *expr.Node) bool {
		_, ok := k.Bounds()
		assert.False(t, ok, k.Path())
		return expr.Continue
	})
	_, err = root.ComputeBounds()
	assert.ErrorIs(t, err, expr.ErrNoGeometry)
}

func TestAmbiguousRuns(t *testing.T) {
	// adjacent products are rendered as one run
	root := expr.NewSum(expr.NewProduct(expr.NewLeaf("a"), expr.NewLeaf("b")), expr.NewProduct(expr.NewLeaf("c")))
	_, err := Render(root, render.NewLayout())
	assert.ErrorIs(t, err, ErrStructuralMismatch)
}

func TestRenderSyntaxError(t *testing.T) {
	root := expr.NewSum(expr.NewLeaf("{"))
	_, err := Render(root, render.NewLayout())
	assert.ErrorIs(t, err, render.ErrSyntax)
}

func TestRenderSample(t *testing.T) {
	root := expr.Sample()
	s, err := Render(root, render.NewLayout())
	require.NoError(t, err)
	assert.Len(t, s.Atoms(), len(root.Leaves()))

	for _, leaf := range root.Leaves() {
		b, err := leaf.ComputeBounds()
		require.NoError(t, err)
		c := b.Center()
		got, err := root.Select(c, c)
		require.NoError(t, err)
		assert.Equal(t, leaf, got, leaf.Path())
	}
	bb, err := root.ComputeBounds()
	require.NoError(t, err)
	outside := bb.Max.Add(math32.Vec2(5, 5))
	got, err := root.Select(outside, outside)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// canonical generates random trees whose generated code
// is unambiguous to [render.Parse].
type canonical struct {
	rnd *rand.Rand
	sym int
}

func (c *canonical) leaf() *expr.Node {
	c.sym++
	return expr.NewLeaf(strconv.Itoa(c.sym % 10))
}

func (c *canonical) op() *expr.Node {
	return expr.NewLeaf(expr.Operators[c.rnd.IntN(len(expr.Operators))])
}

func (c *canonical) sum(depth int) *expr.Node {
	n := expr.NewSum(c.term(depth))
	for range c.rnd.IntN(3) {
		must(n.InsertChild(c.op(), -1))
		must(n.InsertChild(c.term(depth), -1))
	}
	return n
}

func (c *canonical) term(depth int) *expr.Node {
	switch c.rnd.IntN(3) {
	case 0:
		return c.leaf()
	case 1:
		n := expr.NewProduct(c.factor(depth), c.factor(depth))
		if c.rnd.IntN(2) == 0 {
			must(n.InsertChild(c.factor(depth), -1))
		}
		return n
	}
	return c.frac(depth)
}

func (c *canonical) factor(depth int) *expr.Node {
	if depth > 0 && c.rnd.IntN(3) == 0 {
		return c.frac(depth)
	}
	return c.leaf()
}

func (c *canonical) frac(depth int) *expr.Node {
	if depth <= 0 {
		return expr.NewFraction(c.leaf(), c.leaf())
	}
	return expr.NewFraction(c.sum(depth-1), c.sum(depth-1))
}

func TestRenderCanonical(t *testing.T) {
	c := &canonical{rnd: rand.New(rand.NewPCG(1, 2))}
	l := render.NewLayout()
	for i := range 200 {
		root := c.sum(3)
		require.NoError(t, expr.Validate(root))
		_, err := Render(root, l)
		require.NoError(t, err, "%d: %s", i, root.Code())
		bb, err := root.ComputeBounds()
		require.NoError(t, err)
		root.WalkDown(func(k *expr.Node) bool {
			kb, err := k.ComputeBounds()
			require.NoError(t, err)
			assert.True(t, bb.ContainsBox(kb))
			return expr.Continue
		})
	}
}
