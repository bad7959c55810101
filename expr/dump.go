// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/indent"
)

// Dump returns an indented dump of the subtree rooted at this node,
// one node per line, with the cached bounding box of each node that has one.
func (n *Node) Dump() string {
	var b strings.Builder
	depth := len(n.IndexPath())
	n.WalkDown(func(k *Node) bool {
		b.WriteString(indent.Spaces(len(k.IndexPath())-depth, 2))
		b.WriteString(k.String())
		if k.hasBox {
			fmt.Fprintf(&b, " [%g %g %g %g]", k.box.Min.X, k.box.Min.Y, k.box.Max.X, k.box.Max.Y)
		}
		b.WriteByte('\n')
		return Continue
	})
	return b.String()
}
