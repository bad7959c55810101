// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "strings"

// Operators are the leaf symbols written bare in generated code;
// all other symbols are wrapped in a group to stay atomic.
var Operators = []string{"=", "-", "+"}

// IsOperator returns whether the given symbol is one of the [Operators].
func IsOperator(symbol string) bool {
	for _, op := range Operators {
		if symbol == op {
			return true
		}
	}
	return false
}

// Code returns the linear TeX notation for this node, which is what the
// typesetting engine renders:
//   - Sum and Product: the code of the children joined by a single space
//   - Fraction: \frac{numerator}{denominator}
//   - Leaf: the bare symbol for operators, otherwise {symbol}
func (n *Node) Code() string {
	var b strings.Builder
	n.writeCode(&b)
	return b.String()
}

func (n *Node) writeCode(b *strings.Builder) {
	switch n.Kind {
	case Sum, Product:
		for i, kid := range n.children {
			if i > 0 {
				b.WriteByte(' ')
			}
			kid.writeCode(b)
		}
	case Fraction:
		b.WriteString(`\frac`)
		for _, kid := range n.children {
			b.WriteString(slot(kid.Code()))
		}
	default:
		if IsOperator(n.Symbol) {
			b.WriteString(n.Symbol)
			return
		}
		b.WriteByte('{')
		b.WriteString(n.Symbol)
		b.WriteByte('}')
	}
}

// slot returns code as a fraction argument. Code that already is exactly
// one group is its own argument, so a leaf numerator gives \frac{2}{5}.
func slot(code string) string {
	if IsGroup(code) {
		return code
	}
	return "{" + code + "}"
}

// IsGroup returns whether code is a single brace group: it opens with
// { and the matching } is its last byte.
func IsGroup(code string) bool {
	if len(code) < 2 || code[0] != '{' || code[len(code)-1] != '}' {
		return false
	}
	depth := 0
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 && i != len(code)-1 {
				return false
			}
		}
	}
	return depth == 0
}
