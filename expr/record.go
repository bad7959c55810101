// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Record is the serialized form of a [Node]: its kind, the symbol of a
// leaf, and the records of its children. Geometry is never serialized.
type Record struct {
	Kind     Kind     `json:"kind" yaml:"kind" toml:"kind"`
	Symbol   string   `json:"symbol,omitempty" yaml:"symbol,omitempty" toml:"symbol,omitempty"`
	Children []Record `json:"children" yaml:"children" toml:"children"`
}

// Record returns the serialized form of this node and its descendants.
func (n *Node) Record() Record {
	r := Record{Kind: n.Kind, Children: make([]Record, len(n.children))}
	if n.Kind == Leaf {
		r.Symbol = n.Symbol
	}
	for i, kid := range n.children {
		r.Children[i] = kid.Record()
	}
	return r
}

// FromRecord builds a new tree from the given record, returning
// an error if the result breaks any tree invariant.
func FromRecord(r Record) (*Node, error) {
	n, err := fromRecord(r)
	if err != nil {
		return nil, err
	}
	if err := Validate(n); err != nil {
		return nil, err
	}
	return n, nil
}

func fromRecord(r Record) (*Node, error) {
	n := &Node{Kind: r.Kind}
	if r.Kind == Leaf {
		n.Symbol = r.Symbol
	}
	kids := make([]*Node, len(r.Children))
	for i, kr := range r.Children {
		kid, err := fromRecord(kr)
		if err != nil {
			return nil, err
		}
		kids[i] = kid
	}
	if err := n.ReplaceChildren(kids...); err != nil {
		return nil, err
	}
	return n, nil
}
