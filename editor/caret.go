// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"

	"github.com/kitsne241/drift/expr"
)

// placeCaret inserts caret into p right after or before sib, or at the
// end or start of p if sib is nil, and returns the node that holds it.
//
// Rendering keeps only operators between the terms of a sum, so a caret
// that would sit in a [expr.Sum] next to a term joins that term as a
// factor instead, and a caret placed in a [expr.Fraction] goes into
// the slot, which keeps two children.
func placeCaret(p, sib *expr.Node, after bool, caret *expr.Node) (*expr.Node, error) {
	switch p.Kind {
	case expr.Fraction:
		slot := sib
		if slot == nil {
			slot = p.Child(0)
			if after {
				slot = p.Child(1)
			}
		}
		return joinTerm(slot, after, caret)
	case expr.Sum:
		// terms and factors are both space joined, so a bare caret unit
		// next to a term would read back as a factor of that term
		idx := insertIndex(p, sib, after)
		if left := p.Child(idx - 1); isTerm(left) {
			return joinTerm(left, true, caret)
		}
		if right := p.Child(idx); isTerm(right) {
			return joinTerm(right, false, caret)
		}
		return p, p.InsertChild(caret, idx)
	case expr.Product:
		return p, p.InsertChild(caret, insertIndex(p, sib, after))
	}
	return nil, fmt.Errorf("%w: %v can not hold a caret", expr.ErrInvalidMutation, p)
}

// joinTerm places caret at the end or start of the term n. A term that
// is not a container becomes a product of itself and the caret.
func joinTerm(n *expr.Node, after bool, caret *expr.Node) (*expr.Node, error) {
	if n.Kind.IsContainer() {
		return placeCaret(n, nil, after, caret)
	}
	w, err := wrap(n)
	if err != nil {
		return nil, err
	}
	idx := 0
	if after {
		idx = -1
	}
	return w, w.InsertChild(caret, idx)
}

// insertIndex returns the index in p right after or before sib,
// or the end or start of p if sib is nil.
func insertIndex(p, sib *expr.Node, after bool) int {
	if sib == nil {
		if after {
			return p.NumChildren()
		}
		return 0
	}
	idx := sib.IndexInParent()
	if after {
		idx++
	}
	return idx
}

// isTerm returns whether n is a node other than an operator.
func isTerm(n *expr.Node) bool {
	return n != nil && !(n.Kind == expr.Leaf && expr.IsOperator(n.Symbol))
}

// wrap replaces n with a new [expr.Product] holding it.
func wrap(n *expr.Node) (*expr.Node, error) {
	w := expr.NewProduct()
	if err := n.Parent().ReplaceChild(n, w); err != nil {
		return nil, err
	}
	return w, w.InsertChild(n, 0)
}

// splitProduct moves the caret c out of the product p into the sum that
// holds p, with the factors left and right of it as separate terms.
func splitProduct(p, c *expr.Node) error {
	sum := p.Parent()
	at := p.IndexInParent()
	factors := p.Children()
	pos := c.IndexInParent()
	if err := sum.RemoveChild(p); err != nil {
		return err
	}
	if err := p.ReplaceChildren(); err != nil {
		return err
	}
	var terms []*expr.Node
	if t := term(factors[:pos]); t != nil {
		terms = append(terms, t)
	}
	terms = append(terms, c)
	if t := term(factors[pos+1:]); t != nil {
		terms = append(terms, t)
	}
	for i, t := range terms {
		if err := sum.InsertChild(t, at+i); err != nil {
			return err
		}
	}
	return nil
}

// term returns the given factors as one term, or nil if there are none.
func term(factors []*expr.Node) *expr.Node {
	switch len(factors) {
	case 0:
		return nil
	case 1:
		return factors[0]
	}
	return expr.NewProduct(factors...)
}

// fillsSlot returns whether removing the caret c would leave
// a fraction slot empty.
func fillsSlot(c *expr.Node) bool {
	for k := c; k.Parent() != nil; k = k.Parent() {
		if k.Parent().Kind == expr.Fraction {
			return true
		}
		if k.Parent().NumChildren() > 1 {
			return false
		}
	}
	return false
}
