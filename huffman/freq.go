// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "sort"

// SymbolFreq pairs a symbol with the number of times it occurs.
type SymbolFreq struct {
	Sym  rune
	Freq int
}

// Analyze counts the occurrences of every distinct symbol in text and
// returns them ordered by descending frequency. Symbols with equal
// frequency keep the order in which they were first encountered, so the
// result (and therefore the tree shape and the emitted codes) is identical
// across runs for identical input. An empty input yields an empty list.
func Analyze(text string) []SymbolFreq {
	counts := make(map[rune]int)
	var order []rune
	for _, r := range text {
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	}

	freqs := make([]SymbolFreq, 0, len(order))
	for _, r := range order {
		freqs = append(freqs, SymbolFreq{Sym: r, Freq: counts[r]})
	}
	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Freq > freqs[j].Freq
	})
	return freqs
}
