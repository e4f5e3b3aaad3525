// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "io"
import "math/rand"
import "strings"
import "testing"

import "github.com/stretchr/testify/assert"

// Helper test function to build a bit sequence from a '0'/'1' string.
func mkBits(s string) *Bits {
	b := new(Bits)
	b.writeCode(s)
	return b
}

// Helper test function that drains a bit sequence into a '0'/'1' string.
func bitString(b *Bits) string {
	var sb strings.Builder
	for {
		bit, err := b.ReadBit()
		if err == io.EOF {
			break
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Helper test function to deterministically generate pseudo-random text
// over the first n runes of the given alphabet.
func randText(rand *rand.Rand, alphabet []rune, n, length int) string {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		sb.WriteRune(alphabet[rand.Intn(n)])
	}
	return sb.String()
}

// roundTrip runs text through the full pipeline and returns the recovered
// text together with the container size.
func roundTrip(t *testing.T, text string) (string, int) {
	tree, err := Build(Analyze(text))
	if !assert.Nil(t, err, "input %q", text) {
		return "", 0
	}
	bits, err := tree.Compress(text)
	assert.Nil(t, err, "input %q", text)
	buf, err := Pack(bits, tree)
	assert.Nil(t, err, "input %q", text)

	gotBits, gotTree, err := Unpack(buf)
	assert.Nil(t, err, "input %q", text)
	out, err := Decompress(gotBits, gotTree)
	assert.Nil(t, err, "input %q", text)
	return out, len(buf)
}

func TestRoundTrip(t *testing.T) {
	vectors := []string{
		"a",
		"ab",
		"aaaa",
		"aaabbc",
		"hello world",
		"the quick brown fox jumps over the lazy dog",
		"héllo wörld 日本語のテキスト",
		"line\nbreaks\tand\rcontrols\x00too",
		strings.Repeat("a", 64),   // bit sequence is exactly one full chunk
		strings.Repeat("a", 100),  // all-zero chunks across a boundary
		strings.Repeat("ab", 512), // two-symbol stream across many chunks
	}

	for _, text := range vectors {
		out, _ := roundTrip(t, text)
		assert.Equal(t, text, out)
	}
}

func TestRoundTripRandom(t *testing.T) {
	alphabet := []rune("abcdefghijklmnopqrstuvwxyz0123456789 \n\téß日本")
	rand := rand.New(rand.NewSource(0))

	for n := 1; n <= len(alphabet); n += 3 {
		for _, length := range []int{1, 2, 63, 64, 65, 1000} {
			text := randText(rand, alphabet, n, length)
			out, _ := roundTrip(t, text)
			assert.Equal(t, text, out, "alphabet size %d, length %d", n, length)
		}
	}
}

func TestRoundTripPreservesTree(t *testing.T) {
	text := "compression by prefix code"
	tree, err := Build(Analyze(text))
	assert.Nil(t, err)
	bits, err := tree.Compress(text)
	assert.Nil(t, err)

	want, err := json.Marshal(tree.root)
	assert.Nil(t, err)
	buf, err := Pack(bits, tree)
	assert.Nil(t, err)
	_, gotTree, err := Unpack(buf)
	assert.Nil(t, err)
	assert.Equal(t, string(want), string(gotTree))
}

func TestSkewedInputShrinks(t *testing.T) {
	// Heavily skewed frequencies are the codec's home turf; the container
	// must come out smaller than the raw text despite carrying the tree
	// and the per-chunk headers.
	text := strings.Repeat("aaaaaaabbbcce ", 1000)
	_, size := roundTrip(t, text)
	assert.True(t, size < len(text), "container %d bytes, input %d bytes", size, len(text))
}
