// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a frequency-driven prefix-code text codec with
// a self-describing binary container.
//
// Compression builds a binary prefix-code tree from the input's symbol
// frequencies, translates the input into the concatenation of each symbol's
// root-to-leaf code (left edge '0', right edge '1'), and packs the tree
// together with the bit sequence into a single buffer. Because the tree
// travels inside the container, decompression needs no external dictionary:
// it rebuilds the tree from its serialized form and walks it bit by bit to
// recover the original text.
//
// The container layout is, in order (all integers big-endian):
//
//	[4]  int32   byte length of the serialized tree
//	[n]  bytes   tree as compact JSON; a leaf is its one-symbol string,
//	             an internal node an object with exactly the keys "0" and "1"
//	[8]  uint64  number of bit chunks
//	per chunk (the bit sequence split into groups of up to 64 bits):
//	[1]  byte    count of leading zero bits in the chunk (0..64)
//	[8]  uint64  the chunk's bits read as a base-2 integer
//
// The leading-zero count is stored explicitly because the integer form of a
// chunk cannot represent its leading zeros.
//
// The tree is rebuilt fresh for every operation and is never shared or
// mutated; all operations are synchronous, deterministic and re-entrant.
package huffman

// Error is the wrapper type for all errors specific to this package.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	// ErrEmptyInput indicates that a tree was requested for an input that
	// contains no symbols at all.
	ErrEmptyInput error = Error("cannot build tree from empty input")

	// ErrUnknownSymbol indicates that Compress was given a symbol that has
	// no leaf in the tree it was paired with.
	ErrUnknownSymbol error = Error("symbol is not present in tree")

	// ErrMalformedTree indicates that a serialized tree node is neither a
	// leaf string nor an object with exactly the branch keys "0" and "1".
	ErrMalformedTree error = Error(`malformed tree: node keys must be exactly "0" and "1"`)

	// ErrLeadingZeros indicates that a chunk header declares a leading-zero
	// count outside the representable range 0..64.
	ErrLeadingZeros error = Error("chunk leading-zero count exceeds 64")

	// ErrTruncated indicates that the buffer ended before a length declared
	// by its own header fields was satisfied.
	ErrTruncated error = Error("buffer truncated before declared length")
)
