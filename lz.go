// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ash0

// matchLength reports how many bytes starting at buf[pos] equal the bytes
// starting at buf[pos-dist], up to maxLen. Because buf already holds the
// complete raw payload being compressed (unlike the decompressor, which is
// reconstructing it byte by byte), self-overlapping runs — where the match
// extends past pos-dist+dist, i.e. dist < length — compare correctly with
// no special-casing: buf[pos-dist+n] for n >= dist simply reads bytes that
// were themselves part of an earlier repetition, exactly the run-length
// behavior spec.md §4.5 describes for decoding.
func matchLength(buf []byte, pos, dist, maxLen int) int {
	n := 0
	for n < maxLen && buf[pos-dist+n] == buf[pos+n] {
		n++
	}
	return n
}

// search finds the longest match for buf[pos:] against buf[pos-d:] over
// candidate distances d in [minDist, maxDist], ascending, clamped to what's
// actually available (spec.md §4.6). Ties are broken by first-found, i.e.
// the smallest distance achieving the best length wins, since candidates
// are walked in ascending order and a later distance only replaces the
// current best on a strictly longer match.
func search(buf []byte, pos, minDist, maxDist, maxLen int) (bestLen, bestDist int) {
	if maxDist > pos {
		maxDist = pos
	}
	if rem := len(buf) - pos; maxLen > rem {
		maxLen = rem
	}
	if maxLen < 1 {
		return 0, 0
	}
	for d := minDist; d <= maxDist; d++ {
		l := matchLength(buf, pos, d, maxLen)
		if l > bestLen {
			bestLen, bestDist = l, d
			if bestLen >= maxLen {
				break
			}
		}
	}
	return bestLen, bestDist
}

// searchRestricted is search's restricted sibling (spec.md §4.6): it only
// considers the explicit distances in allowed, used by the optimal
// re-tokenizer once the distance alphabet has been pruned to the symbols
// actually present in the current distance tree.
func searchRestricted(buf []byte, pos int, allowed []int, maxLen int) (bestLen, bestDist int) {
	if rem := len(buf) - pos; maxLen > rem {
		maxLen = rem
	}
	if maxLen < 1 {
		return 0, 0
	}
	for _, d := range allowed {
		if d < 1 || d > pos {
			continue
		}
		l := matchLength(buf, pos, d, maxLen)
		if l > bestLen {
			bestLen, bestDist = l, d
			if bestLen >= maxLen {
				break
			}
		}
	}
	return bestLen, bestDist
}
