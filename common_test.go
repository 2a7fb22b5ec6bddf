// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ash0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	var c Config
	assert.Nil(t, c.Validate())
	c = c.withDefaults()
	assert.Equal(t, uint32(DefaultSymbolBits), c.SymbolBits)
	assert.Equal(t, uint32(DefaultDistanceBits), c.DistanceBits)
}

func TestConfigValidateBounds(t *testing.T) {
	assert.NotNil(t, Config{SymbolBits: MaxSymbolBits + 1}.Validate())
	assert.NotNil(t, Config{DistanceBits: MaxDistanceBits + 1}.Validate())
	assert.NotNil(t, Config{Passes: -1}.Validate())
	assert.Nil(t, Config{SymbolBits: MinSymbolBits, DistanceBits: MinDistanceBits}.Validate())
}

func TestMaxMatchLenAndDistance(t *testing.T) {
	assert.Equal(t, 1<<9-1-256+3, maxMatchLen(9))
	assert.Equal(t, 1<<11-1+1, maxDistance(11))
}
