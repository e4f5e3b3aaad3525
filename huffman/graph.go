// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "fmt"
import "strings"

import "github.com/emicklei/dot"

// Graph renders the tree as a Graphviz digraph for visualisation. Ranks run
// bottom-up with edges pointing from each child to its parent, and every
// node is labelled with its symbol-group and frequency. Rendering is a side
// effect only; neither compression nor decompression depends on it.
func (t *Tree) Graph() *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "BT")

	var id int
	var walk func(n *node) dot.Node
	walk = func(n *node) dot.Node {
		gn := g.Node(fmt.Sprintf("n%d", id))
		id++
		gn.Attr("label", fmt.Sprintf(`%s\n(%d)`, escapeLabel(n.syms), n.freq))
		if !n.leaf() {
			g.Edge(walk(n.left), gn)
			g.Edge(walk(n.right), gn)
		}
		return gn
	}
	walk(t.root)
	return g
}

var labelEscaper = strings.NewReplacer("\n", `\\n`, "\t", `\\t`, "\r", `\\r`)

// escapeLabel rewrites control characters so symbol-groups containing them
// stay printable inside Graphviz labels.
func escapeLabel(s string) string {
	return labelEscaper.Replace(s)
}
