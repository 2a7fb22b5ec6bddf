// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ash0

import (
	"testing"

	"github.com/NinjaCheetah/ash0/internal/ashtest"
	"github.com/stretchr/testify/assert"
)

func TestBitRoundTrip(t *testing.T) {
	r := ashtest.NewRand(0)

	type write struct {
		v uint32
		n uint
	}
	var writes []write
	for i := 0; i < 2000; i++ {
		n := uint(1 + r.Intn(32))
		v := uint32(r.Int())
		if n < 32 {
			v &= 1<<n - 1
		}
		writes = append(writes, write{v, n})
	}

	var bw bitWriter
	for _, w := range writes {
		bw.writeBits(w.v, w.n)
	}
	buf := bw.bytes()
	assert.Equal(t, 0, len(buf)%4, "bit writer output must be word-aligned")

	var br bitReader
	br.init(buf, len(buf), 0)
	for _, w := range writes {
		assert.Equal(t, w.v, br.readBits(w.n))
	}
}

func TestBitReaderTruncated(t *testing.T) {
	var br bitReader
	assert.PanicsWithValue(t, ErrTruncated, func() {
		br.init(nil, 0, 0)
	})
}

func TestSingleBitRoundTrip(t *testing.T) {
	var bw bitWriter
	bits := []uint32{1, 0, 1, 1, 0, 0, 0, 1}
	for _, b := range bits {
		bw.writeBit(b)
	}
	buf := bw.bytes()

	var br bitReader
	br.init(buf, len(buf), 0)
	for _, want := range bits {
		assert.Equal(t, want, br.readBit())
	}
}
