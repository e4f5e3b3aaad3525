// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "strings"

// Compress translates text into the concatenation of each symbol's code.
// Every symbol must have a leaf in the tree; a symbol without one yields
// ErrUnknownSymbol. The tree is normally the one built from this same
// text's frequencies, but the pairing is the caller's responsibility since
// Analyze, Build and Compress are separate calls.
func (t *Tree) Compress(text string) (*Bits, error) {
	b := new(Bits)
	for _, r := range text {
		code, ok := t.codes[r]
		if !ok {
			return nil, ErrUnknownSymbol
		}
		b.writeCode(code)
	}
	return b, nil
}

// decNode is a node of a tree rebuilt from its serialized form. Unlike the
// build-side node it is a plain tagged variant with no frequencies: decoding
// only needs the branch structure and the leaf symbols.
type decNode struct {
	leaf      bool
	sym       string
	zero, one *decNode
}

// parseTree rebuilds a tree from its serialized form. Any node that is not
// a leaf string or an object with exactly the branch keys "0" and "1" makes
// the whole payload invalid.
func parseTree(tree []byte) (*decNode, error) {
	var v interface{}
	if err := json.Unmarshal(tree, &v); err != nil {
		return nil, ErrMalformedTree
	}
	return parseNode(v)
}

func parseNode(v interface{}) (*decNode, error) {
	switch v := v.(type) {
	case string:
		return &decNode{leaf: true, sym: v}, nil
	case map[string]interface{}:
		if len(v) != 2 {
			return nil, ErrMalformedTree
		}
		lv, okl := v["0"]
		rv, okr := v["1"]
		if !okl || !okr {
			return nil, ErrMalformedTree
		}
		zero, err := parseNode(lv)
		if err != nil {
			return nil, err
		}
		one, err := parseNode(rv)
		if err != nil {
			return nil, err
		}
		return &decNode{zero: zero, one: one}, nil
	default:
		return nil, ErrMalformedTree
	}
}

// Decompress recovers the original text from a bit sequence and the
// serialized tree it was encoded with, both as produced by Unpack. Each bit
// moves a cursor down the rebuilt tree; reaching a leaf emits its symbol
// and resets the cursor to the root. A partial path left over when the bits
// run out is discarded, since a well-formed container only ever carries
// whole-symbol sequences.
func Decompress(b *Bits, tree []byte) (string, error) {
	root, err := parseTree(tree)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	cur := root
	for b.Len() > 0 {
		if cur.leaf {
			// Only reachable when the payload's root is a bare leaf;
			// there is no branch to follow for the pending bit.
			return "", ErrMalformedTree
		}
		bit, err := b.ReadBit()
		if err != nil {
			return "", err
		}
		if bit {
			cur = cur.one
		} else {
			cur = cur.zero
		}
		if cur.leaf {
			sb.WriteString(cur.sym)
			cur = root
		}
	}
	return sb.String(), nil
}
