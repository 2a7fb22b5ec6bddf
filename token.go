// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ash0

// token is a single emitted unit of the symbol stream: either a literal
// byte or an LZ77 back-reference (spec.md §4.7). length == 0 marks a
// literal; any match is at least minMatchLen long, so the zero value is
// never ambiguous with a real match.
type token struct {
	length int // 0 for a literal, else the copy length
	dist   int // valid only when length > 0
	lit    byte
}

func literalToken(b byte) token { return token{lit: b} }

func matchToken(length, dist int) token { return token{length: length, dist: dist} }

func (t token) isMatch() bool { return t.length > 0 }

// symbol returns the symbol-stream value this token encodes: the literal
// byte itself, or literalLimit+(length-minMatchLen) for a match (spec.md
// §3's "symbol alphabet" layout).
func (t token) symbol() uint32 {
	if !t.isMatch() {
		return uint32(t.lit)
	}
	return uint32(t.length - minMatchLen + literalLimit)
}

// lengthForSymbol inverts token.symbol for a match symbol.
func lengthForSymbol(sym uint32) int {
	return int(sym) - literalLimit + minMatchLen
}

// distSymbol returns the distance-stream value for a match token: the
// back-reference distance offset by one (spec.md §3, distances are stored
// as dist-1 so that a one-byte-back reference, the most common case, is
// symbol 0).
func (t token) distSymbol() uint32 {
	return uint32(t.dist - 1)
}

func distanceForSymbol(sym uint32) int {
	return int(sym) + 1
}

// tokenize greedily splits buf into literal and back-reference tokens
// (spec.md §4.7): at each position it looks for the longest match within
// the current alphabet's bounds and emits it if at least minMatchLen bytes
// long, otherwise falls back to a single literal and advances by one byte.
// This is the first pass Compress runs; Config.Passes further re-tokenizes
// the result against trained trees (retokenize.go).
func tokenize(buf []byte, symBits, distBits uint32) []token {
	maxLen := maxMatchLen(symBits)
	maxDist := maxDistance(distBits)

	var toks []token
	for pos := 0; pos < len(buf); {
		bestLen, bestDist := search(buf, pos, 1, maxDist, maxLen)
		if bestLen >= minMatchLen {
			toks = append(toks, matchToken(bestLen, bestDist))
			pos += bestLen
		} else {
			toks = append(toks, literalToken(buf[pos]))
			pos++
		}
	}
	return toks
}
