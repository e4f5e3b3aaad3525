// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "sort"
import "unicode/utf8"

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// node is a tree node. A leaf has no children and carries exactly one
// symbol (or none, for the synthetic leaf); an internal node has exactly
// two and carries the concatenation of its children's symbol-groups, left
// group first, with the sum of their frequencies.
type node struct {
	syms  string
	freq  int
	left  *node
	right *node
}

func (n *node) leaf() bool { return n.left == nil }

// MarshalJSON writes a leaf as its one-symbol string and an internal node
// as an object with exactly the branch keys "0" (left) and "1" (right).
func (n *node) MarshalJSON() ([]byte, error) {
	if n.leaf() {
		return json.Marshal(n.syms)
	}
	return json.Marshal(struct {
		Left  *node `json:"0"`
		Right *node `json:"1"`
	}{n.left, n.right})
}

// Tree is an immutable prefix-code tree together with the code table
// derived from it. Build once per compression run; decompression rebuilds
// its own copy from the serialized form inside the container.
type Tree struct {
	root  *node
	codes map[rune]string // root-to-leaf path per symbol, '0' left, '1' right
}

// Build constructs the prefix-code tree for the given frequency list, which
// must be ordered as produced by Analyze. It returns ErrEmptyInput when the
// list is empty.
//
// A list with a single entry gets a special shape: the root holds the one
// real symbol as its left child and a synthetic empty leaf of frequency
// zero as its right child, so that the symbol still receives a one-bit
// code. Otherwise the two lowest-frequency nodes are merged repeatedly, the
// lowest becoming the left child, and the working list is re-sorted with a
// stable descending sort after each merge. The stable tie order is what
// makes the resulting codes reproducible.
func Build(freqs []SymbolFreq) (*Tree, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}

	nodes := make([]*node, len(freqs))
	for i, f := range freqs {
		nodes[i] = &node{syms: string(f.Sym), freq: f.Freq}
	}
	if len(nodes) == 1 {
		only := nodes[0]
		nodes[0] = &node{syms: only.syms, freq: only.freq, left: only, right: new(node)}
	}
	for len(nodes) > 1 {
		least := nodes[len(nodes)-1]
		second := nodes[len(nodes)-2]
		merged := &node{
			syms:  least.syms + second.syms,
			freq:  least.freq + second.freq,
			left:  least,
			right: second,
		}
		nodes = append(nodes[:len(nodes)-2], merged)
		sort.SliceStable(nodes, func(i, j int) bool {
			return nodes[i].freq > nodes[j].freq
		})
	}

	t := &Tree{root: nodes[0], codes: make(map[rune]string)}
	t.assignCodes(t.root, "")
	return t, nil
}

// assignCodes records every real leaf's root-to-leaf path in the code
// table. The synthetic empty leaf gets no entry.
func (t *Tree) assignCodes(n *node, path string) {
	if n.leaf() {
		if n.syms != "" {
			r, _ := utf8.DecodeRuneInString(n.syms)
			t.codes[r] = path
		}
		return
	}
	t.assignCodes(n.left, path+"0")
	t.assignCodes(n.right, path+"1")
}
