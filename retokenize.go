// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ash0

import (
	"sort"

	"github.com/NinjaCheetah/ash0/internal/ashtree"
)

// leafSymbols returns, ascending, every leaf symbol id actually reachable
// in t — i.e. every s with t.Depth[s] != 0. A leaf can never be t's root
// (every tree has >= 2 leaves), so a zero depth unambiguously means "not
// part of this tree's shape" rather than "root-depth leaf".
func leafSymbols(t *ashtree.Tree) []uint32 {
	var syms []uint32
	for s := uint32(0); s < t.NumLeaves(); s++ {
		if t.Depth[s] != 0 {
			syms = append(syms, s)
		}
	}
	return syms
}

// retokenize re-decomposes buf to minimize total bit cost under the given,
// already-trained trees (spec.md §4.9). It is a backward dynamic program:
// node[pos] holds the cheapest (token, weight) achievable from pos to the
// end of buf, computed from node[pos+1:] outward so every later decision
// is already settled by the time an earlier position considers it.
func retokenize(buf []byte, symTree, distTree *ashtree.Tree) []token {
	n := len(buf)
	if n == 0 {
		return nil
	}

	var allowedLengths, allowedDistances []int
	for _, s := range leafSymbols(symTree) {
		if s >= literalLimit {
			allowedLengths = append(allowedLengths, int(s)-literalLimit+minMatchLen)
		}
	}
	for _, s := range leafSymbols(distTree) {
		allowedDistances = append(allowedDistances, int(s)+1)
	}
	maxAllowedLength := 0
	if len(allowedLengths) > 0 {
		maxAllowedLength = allowedLengths[len(allowedLengths)-1]
	}

	type cell struct {
		tok    token
		weight uint64
	}
	nodes := make([]cell, n+1) // nodes[n] is the empty-suffix sentinel, weight 0

	for pos := n - 1; pos >= 0; pos-- {
		tailAt := func(p int) uint64 {
			if p < n {
				return nodes[p].weight
			}
			return 0
		}

		bestTok := literalToken(buf[pos])
		bestWeight := uint64(symTree.Depth[buf[pos]]) + tailAt(pos+1)
		bestIsMatch := false
		bestLen := 0

		matchLen, _ := searchRestricted(buf, pos, allowedDistances, maxAllowedLength)
		if matchLen >= minMatchLen && len(allowedLengths) > 0 {
			// Every allowed length <= matchLen is a candidate (spec.md
			// §4.9 step d); walk them from longest to shortest.
			hi := sort.SearchInts(allowedLengths, matchLen+1) - 1
			for i := hi; i >= 0; i-- {
				l := allowedLengths[i]
				if l < minMatchLen {
					break
				}
				sym := uint32(l - minMatchLen + literalLimit)
				cost := uint64(symTree.Depth[sym]) + tailAt(pos+l)
				if cost < bestWeight {
					bestWeight, bestTok, bestIsMatch, bestLen = cost, token{}, true, l
				}
			}
		}

		if bestIsMatch {
			// Winner is a match: separately pick the cheapest distance
			// code among every allowed distance that actually verifies
			// at this length (spec.md §4.9 step e) — search_restricted
			// only guarantees *a* valid distance, not the cheapest one.
			bestDist, bestDepth := -1, uint32(0)
			for _, d := range allowedDistances {
				if d > pos {
					continue
				}
				if matchLength(buf, pos, d, bestLen) < bestLen {
					continue
				}
				depth := distTree.Depth[d-1]
				if bestDist < 0 || depth < bestDepth {
					bestDist, bestDepth = d, depth
				}
			}
			bestTok = matchToken(bestLen, bestDist)
			bestWeight += uint64(bestDepth)
		}

		nodes[pos] = cell{tok: bestTok, weight: bestWeight}
	}

	var toks []token
	for pos := 0; pos < n; {
		t := nodes[pos].tok
		toks = append(toks, t)
		if t.isMatch() {
			pos += t.length
		} else {
			pos++
		}
	}
	return toks
}
