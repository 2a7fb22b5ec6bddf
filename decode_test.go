// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ash0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecompressMagicRejection(t *testing.T) {
	zeros := make([]byte, 16)
	_, err := Decompress(zeros, Config{})
	assert.Equal(t, ErrBadMagic, err)
}

func TestDecompressTruncated(t *testing.T) {
	out, err := Compress([]byte("hello world!"), Config{})
	assert.Nil(t, err)
	_, err = Decompress(out[:len(out)-4], Config{})
	assert.NotNil(t, err)
}

func TestDecompressMismatchedTreeWidthIsTranslated(t *testing.T) {
	// A bit stream built for one alphabet width, read back under a
	// narrower one (spec.md §8 scenario 4, "Pokémon Ranch mode"), must
	// surface as this package's own ErrTruncated, never as the
	// internal/ashtree package's own error type escaping across the
	// public API boundary.
	buf := make([]byte, 512)
	for i := range buf {
		buf[i] = byte(i)
	}
	out, err := Compress(buf, Config{SymbolBits: 9, DistanceBits: 20})
	assert.Nil(t, err)

	_, err = Decompress(out, Config{SymbolBits: 9, DistanceBits: 1})
	assert.NotNil(t, err)
	_, isAshError := err.(Error)
	assert.True(t, isAshError, "decode error must be ash0.Error, got %T", err)
}

func TestDecompressBadDistOffset(t *testing.T) {
	out, err := Compress([]byte("abcabcabc"), Config{})
	assert.Nil(t, err)

	// Point the distance stream offset past the end of the buffer; the
	// distance bit reader's first word load must fail cleanly.
	corrupt := append([]byte(nil), out...)
	corrupt[hdrDistOff] = 0xFF
	_, err = Decompress(corrupt, Config{})
	assert.NotNil(t, err)
}
