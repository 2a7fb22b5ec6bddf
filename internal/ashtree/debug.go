// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build debug

package ashtree

import (
	"fmt"
	"strings"

	"github.com/NinjaCheetah/ash0/internal/ashbits"
)

// String dumps a built tree's leaves, in increasing symbol order, as
// "symbol: depth (represent), code: <bits>". It is gated behind the debug
// build tag the same way dsnet/compress/internal/prefix's dumpers are, and
// exists for diagnosing the "Pokémon Ranch mode" class of bug in spec.md
// §8 — a tree built for one alphabet width silently misdecoding under
// another, where eyeballing the serialized shape is the fastest way to see
// what went wrong.
func (t *Tree) String() string {
	if t.Depth == nil {
		return "{<undecorated tree: call Build, not Deserialize>}"
	}
	var ss []string
	ss = append(ss, "{")
	for sym := uint32(0); sym < t.NumLeaves(); sym++ {
		if t.Depth[sym] == 0 {
			continue // not a leaf of this tree (a built tree's root is never a leaf)
		}
		code := leafCode(t, sym)
		ss = append(ss, fmt.Sprintf("\t%5d:  depth %2d,  represent %d,  code %s",
			sym, t.Depth[sym], t.Represent[sym], code))
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}

// leafCode renders sym's root-to-leaf path as a string of '0'/'1'
// characters, reusing ashbits.ReverseUint32 to flip the leaf-to-root walk
// order of the low bits into root-to-leaf display order without building
// an intermediate slice.
func leafCode(t *Tree, sym uint32) string {
	var bits uint32
	var n uint32
	for cur := sym; cur != t.Root; cur = t.Parent[cur] {
		bits <<= 1
		if !t.FromLeft[cur] {
			bits |= 1
		}
		n++
	}
	switch {
	case n == 0:
		return "<root-is-leaf>"
	case n > 32:
		// Pathologically unbalanced tree; not worth reversing into a
		// uint32 for display purposes.
		return fmt.Sprintf("<depth %d, too deep to render>", n)
	default:
		bits = ashbits.ReverseUint32N(bits, uint(n))
		return fmt.Sprintf(fmt.Sprintf("%%0%db", n), bits)
	}
}
