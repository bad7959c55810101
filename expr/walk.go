// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents,
// stopping if the function returns [Break]. It returns whether walking
// was finished (false if it was aborted with [Break]).
func (n *Node) WalkUp(fun func(k *Node) bool) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}

// WalkDown calls the given function on the node and all of its descendants
// in a depth-first, document-order manner. It stops walking the current
// branch of the tree if the function returns [Break] and keeps walking if
// it returns [Continue]. It is non-recursive.
func (n *Node) WalkDown(fun func(k *Node) bool) {
	tm := map[*Node]int{} // traversal map: index of the current child
	cur := n
	tm[cur] = -1
outer:
	for {
		if fun(cur) && len(cur.children) > 0 {
			tm[cur] = 0
			cur = cur.children[0]
			tm[cur] = -1
			continue
		}
		tm[cur] = len(cur.children)
		// ascent branch: move to the right and then up
		for {
			ci := tm[cur]
			if ci+1 < len(cur.children) {
				ci++
				tm[cur] = ci
				cur = cur.children[ci]
				tm[cur] = -1
				continue outer
			}
			if cur == n {
				break outer
			}
			cur = cur.parent
		}
	}
}

// WalkDownPost iterates in a depth-first manner over the children, calling
// shouldContinue on each node to test if processing should proceed (if it
// returns [Break] then that branch of the tree is not further processed),
// and then calls the given function after all of a node's children have
// been iterated over. In effect, this means that the given function is
// called for deeper nodes first. It is non-recursive.
func (n *Node) WalkDownPost(shouldContinue func(k *Node) bool, fun func(k *Node) bool) {
	tm := map[*Node]int{}
	cur := n
	tm[cur] = -1
outer:
	for {
		if shouldContinue(cur) && len(cur.children) > 0 {
			tm[cur] = 0
			cur = cur.children[0]
			tm[cur] = -1
			continue
		}
		tm[cur] = len(cur.children)
		for {
			ci := tm[cur]
			if ci+1 < len(cur.children) {
				ci++
				tm[cur] = ci
				cur = cur.children[ci]
				tm[cur] = -1
				continue outer
			}
			fun(cur)
			if cur == n {
				break outer
			}
			cur = cur.parent
		}
	}
}

// Leaves returns all [Leaf] nodes under this node in document order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.WalkDown(func(k *Node) bool {
		if k.Kind == Leaf {
			leaves = append(leaves, k)
		}
		return Continue
	})
	return leaves
}
