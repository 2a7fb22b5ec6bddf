// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ash0

import (
	"testing"

	"github.com/NinjaCheetah/ash0/internal/ashtest"
	"github.com/stretchr/testify/assert"
)

func TestSearchFindsRun(t *testing.T) {
	buf := []byte("abcabcabcabc")
	l, d := search(buf, 3, 1, len(buf), len(buf))
	assert.Equal(t, 9, l) // "abcabcabc" repeats to the end
	assert.Equal(t, 3, d)
}

func TestSearchOverlap(t *testing.T) {
	buf := append([]byte{0x00}, make([]byte, 299)...) // 300 zero bytes
	l, d := search(buf, 1, 1, len(buf), len(buf)-1)
	assert.Equal(t, 1, d)
	assert.Equal(t, 299, l)
}

func TestSearchNoMatch(t *testing.T) {
	buf := []byte("abcdefgh")
	l, d := search(buf, 4, 1, 4, 4)
	assert.Equal(t, 0, l)
	assert.Equal(t, 0, d)
}

func TestSearchTiesPreferSmallestDistance(t *testing.T) {
	buf := []byte("xxxxxxxx")
	l, d := search(buf, 4, 1, 4, 4)
	assert.Equal(t, 4, l)
	assert.Equal(t, 1, d)
}

func TestSearchRestricted(t *testing.T) {
	buf := []byte("abcabcabc")
	l, d := searchRestricted(buf, 3, []int{2, 3, 5}, 6)
	assert.Equal(t, 3, d)
	assert.Equal(t, 6, l)
}

func TestMatchLengthClampedByBuffer(t *testing.T) {
	data := ashtest.Repeats(1, 4096)
	l, d := search(data, len(data)-1, 1, len(data), 1<<20)
	assert.LessOrEqual(t, l, 1)
	_ = d
}
