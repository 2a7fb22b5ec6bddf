// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ashtree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// memWriter/memReader are minimal BitWriter/BitReader implementations over
// an in-memory slice of 0/1 values, standing in for ash0's word-packed
// bitWriter/bitReader so this package's tests have no dependency on
// package ash0 (which itself depends on ashtree).
type memWriter struct{ bits []uint32 }

func (w *memWriter) WriteBit(b uint32) { w.bits = append(w.bits, b&1) }
func (w *memWriter) WriteBits(v uint32, n uint) {
	for i := int(n) - 1; i >= 0; i-- {
		w.WriteBit((v >> uint(i)) & 1)
	}
}

type memReader struct {
	bits []uint32
	pos  int
}

func (r *memReader) ReadBit() uint32 {
	b := r.bits[r.pos]
	r.pos++
	return b
}
func (r *memReader) ReadBits(n uint) uint32 {
	var v uint32
	for i := uint(0); i < n; i++ {
		v = v<<1 | r.ReadBit()
	}
	return v
}

func TestTreeRoundTrip(t *testing.T) {
	const width = 4
	freq := make([]uint64, 1<<width)
	freq[0], freq[1], freq[2], freq[5] = 10, 5, 3, 1

	built := Build(width, freq)

	var w memWriter
	built.Serialize(&w)

	r := &memReader{bits: w.bits}
	got := Deserialize(r, width)

	for _, sym := range []uint32{0, 1, 2, 5} {
		assert.Equal(t, sym, got.DecodeSymbol(&memReader{bits: encode(built, sym)}))
	}
}

// encode renders sym's code from built (an encoder-side tree) into a fresh
// bit slice, for feeding into a decoder-side (Deserialize'd) tree in
// TestTreeRoundTrip.
func encode(t *Tree, sym uint32) []uint32 {
	var w memWriter
	t.EncodeSymbol(&w, sym)
	return w.bits
}

func TestTreeEncodeDecodeAgree(t *testing.T) {
	const width = 5
	freq := []uint64{1, 2, 3, 4, 5, 0, 0, 1}
	tr := Build(width, freq)

	for sym := uint32(0); sym < tr.NumLeaves(); sym++ {
		if tr.Depth[sym] == 0 && sym != tr.Root {
			continue // symbol never made it into the tree
		}
		var w memWriter
		tr.EncodeSymbol(&w, sym)
		r := &memReader{bits: w.bits}
		assert.Equal(t, sym, tr.DecodeSymbol(r))
	}
}

func TestBuildPromotesToTwoLeaves(t *testing.T) {
	// A single nonzero-frequency symbol (spec.md §8 "alphabet floor").
	freq := []uint64{0, 0, 7, 0}
	tr := Build(2, freq)
	leaves := 0
	for sym := uint32(0); sym < tr.NumLeaves(); sym++ {
		if tr.Depth[sym] > 0 {
			leaves++
		}
	}
	assert.GreaterOrEqual(t, leaves, 2)
	assert.True(t, tr.Depth[2] > 0 || tr.Root == 2)
}

func TestShallowChildFirst(t *testing.T) {
	const width = 3
	freq := []uint64{100, 1, 1, 1, 1, 1, 1, 1}
	tr := Build(width, freq)
	// Walk every internal node and check the invariant holds everywhere,
	// not just at the root.
	for n := tr.NumLeaves(); n < uint32(len(tr.Left)); n++ {
		if tr.Represent[n] == 0 {
			continue // unused internal-node slot
		}
		assert.LessOrEqual(t, tr.Represent[tr.Left[n]], tr.Represent[tr.Right[n]])
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	freq := []uint64{7, 0, 3, 9, 1, 0, 0, 4}
	a := Build(3, freq)
	b := Build(3, freq)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Build is not deterministic for identical input (-first +second):\n%s", diff)
	}
}

func TestTreeSerializeEmitsTwoLeavesMinimum(t *testing.T) {
	tr := Build(1, []uint64{5, 0})
	var w memWriter
	tr.Serialize(&w)
	got := Deserialize(&memReader{bits: w.bits}, 1)
	assert.Equal(t, uint32(0), got.DecodeSymbol(&memReader{bits: encode(tr, 0)}))
	assert.Equal(t, uint32(1), got.DecodeSymbol(&memReader{bits: encode(tr, 1)}))
}
