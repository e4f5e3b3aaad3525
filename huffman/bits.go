// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "io"

import "github.com/dsnet/golib/bits"

// Bits is the ordered bit sequence flowing between the coder and the
// container: Compress and Unpack produce one, Pack and Decompress consume
// one. It is append-once and read-once; reads return io.EOF once every
// written bit has been consumed.
type Bits struct {
	buf  bits.Buffer
	read int64
}

// WriteBit appends a single bit.
func (b *Bits) WriteBit(v bool) {
	b.buf.WriteBit(v)
}

// writeCode appends a '0'/'1' code string, most significant bit first.
func (b *Bits) writeCode(code string) {
	for i := 0; i < len(code); i++ {
		b.buf.WriteBit(code[i] == '1')
	}
}

// ReadBit consumes and returns the next bit, or io.EOF when none remain.
func (b *Bits) ReadBit() (bool, error) {
	if b.read >= b.buf.BitsWritten() {
		return false, io.EOF
	}
	v, err := b.buf.ReadBit()
	if err == nil {
		b.read++
	}
	return v, err
}

// Len reports the number of bits written but not yet read.
func (b *Bits) Len() int64 { return b.buf.BitsWritten() - b.read }
