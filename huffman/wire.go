// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "bytes"
import "encoding/binary"
import "io"
import "math/bits"

import "github.com/dsnet/golib/errs"

// chunkBits is the maximum number of bits carried by a single chunk.
const chunkBits = 64

// Pack serializes the tree and the bit sequence into a single
// self-describing buffer using the layout documented on the package. The
// bit sequence is consumed in the process.
func Pack(b *Bits, t *Tree) ([]byte, error) {
	tree, err := json.Marshal(t.root)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	var tmp [8]byte
	binary.BigEndian.PutUint32(tmp[:4], uint32(len(tree)))
	buf.Write(tmp[:4])
	buf.Write(tree)

	numChunks := uint64((b.Len() + chunkBits - 1) / chunkBits)
	binary.BigEndian.PutUint64(tmp[:], numChunks)
	buf.Write(tmp[:])

	for b.Len() > 0 {
		cnt := b.Len()
		if cnt > chunkBits {
			cnt = chunkBits
		}

		// The chunk's integer form drops its leading zeros, so count them
		// explicitly while accumulating the value.
		var val uint64
		var zeros byte
		sawOne := false
		for i := int64(0); i < cnt; i++ {
			bit, err := b.ReadBit()
			if err != nil {
				return nil, err
			}
			val <<= 1
			if bit {
				val |= 1
				sawOne = true
			} else if !sawOne {
				zeros++
			}
		}

		buf.WriteByte(zeros)
		binary.BigEndian.PutUint64(tmp[:], val)
		buf.Write(tmp[:])
	}
	return buf.Bytes(), nil
}

// Unpack splits a buffer produced by Pack back into its bit sequence and
// serialized tree. Each chunk is reconstructed as its stored count of zero
// bits followed by the binary digits of its stored value; a value of zero
// contributes no digits, so an all-zero chunk is exactly its count of zero
// bits. It returns ErrLeadingZeros for a count byte above 64 and
// ErrTruncated when the buffer ends before a declared length is satisfied.
func Unpack(buf []byte) (b *Bits, tree []byte, err error) {
	defer errs.Recover(&err)
	rd := bytes.NewReader(buf)

	treeLen := int32(readUint(rd, 4))
	errs.Assert(treeLen >= 0, ErrTruncated)
	tree = make([]byte, treeLen)
	_, rerr := io.ReadFull(rd, tree)
	errs.Assert(rerr == nil, ErrTruncated)

	numChunks := readUint(rd, 8)
	b = new(Bits)
	for i := uint64(0); i < numChunks; i++ {
		zeros := readUint(rd, 1)
		errs.Assert(zeros <= chunkBits, ErrLeadingZeros)
		val := readUint(rd, 8)

		for n := uint64(0); n < zeros; n++ {
			b.WriteBit(false)
		}
		for n := bits.Len64(val) - 1; n >= 0; n-- {
			b.WriteBit(val>>uint(n)&1 == 1)
		}
	}
	return b, tree, nil
}

// readUint reads an n-byte big-endian unsigned integer, panicking with
// ErrTruncated when the reader cannot satisfy it.
func readUint(rd *bytes.Reader, n int) uint64 {
	var tmp [8]byte
	_, err := io.ReadFull(rd, tmp[8-n:])
	errs.Assert(err == nil, ErrTruncated)
	return binary.BigEndian.Uint64(tmp[:])
}
