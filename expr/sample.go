// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Sample returns a new copy of the sample expression
// (2a + 3) / 5 = 1, which is used as the default document.
func Sample() *Node {
	return NewSum(
		NewFraction(
			NewSum(
				NewProduct(NewLeaf("2"), NewLeaf("a")),
				NewLeaf("+"),
				NewLeaf("3"),
			),
			NewLeaf("5"),
		),
		NewLeaf("="),
		NewLeaf("1"),
	)
}
