// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "testing"

import "github.com/stretchr/testify/assert"

func TestAnalyze(t *testing.T) {
	vectors := []struct {
		input  string
		output []SymbolFreq
	}{{
		input:  "",
		output: nil,
	}, {
		input:  "a",
		output: []SymbolFreq{{'a', 1}},
	}, {
		input:  "aaabbc",
		output: []SymbolFreq{{'a', 3}, {'b', 2}, {'c', 1}},
	}, {
		// Equal frequencies keep first-encounter order.
		input:  "abab",
		output: []SymbolFreq{{'a', 2}, {'b', 2}},
	}, {
		input:  "baba",
		output: []SymbolFreq{{'b', 2}, {'a', 2}},
	}, {
		input:  "banana",
		output: []SymbolFreq{{'a', 3}, {'n', 2}, {'b', 1}},
	}, {
		input:  "日本日語語語",
		output: []SymbolFreq{{'語', 3}, {'日', 2}, {'本', 1}},
	}}

	for i, v := range vectors {
		got := Analyze(v.input)
		if len(v.output) == 0 {
			assert.Empty(t, got, "test %d", i)
			continue
		}
		assert.Equal(t, v.output, got, "test %d", i)
	}
}

func TestAnalyzeDeterminism(t *testing.T) {
	const text = "mississippi river, mississippi delta"
	first := Analyze(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Analyze(text))
	}
}
