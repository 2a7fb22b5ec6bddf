// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package ashbits holds small numeric helpers shared across the ASH0
// packages: big-endian word load/store and the bit-reversal lookup tables
// used by the debug dumpers.
package ashbits

import "encoding/binary"

// LoadUint32BE reads a 32-bit big-endian word from b[0:4].
func LoadUint32BE(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// StoreUint32BE writes v into b[0:4] as a 32-bit big-endian word.
func StoreUint32BE(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

var (
	// ReverseLUT maps a byte to the value with its bits reversed.
	ReverseLUT [256]byte
)

func init() {
	for i := range ReverseLUT {
		b := uint8(i)
		b = (b&0xaa)>>1 | (b&0x55)<<1
		b = (b&0xcc)>>2 | (b&0x33)<<2
		b = (b&0xf0)>>4 | (b&0x0f)<<4
		ReverseLUT[i] = b
	}
}

// ReverseUint32 reverses all bits of v.
func ReverseUint32(v uint32) (x uint32) {
	x |= uint32(ReverseLUT[byte(v>>0)]) << 24
	x |= uint32(ReverseLUT[byte(v>>8)]) << 16
	x |= uint32(ReverseLUT[byte(v>>16)]) << 8
	x |= uint32(ReverseLUT[byte(v>>24)]) << 0
	return x
}

// ReverseUint32N reverses the lower n bits of v.
func ReverseUint32N(v uint32, n uint) uint32 {
	return ReverseUint32(v << (32 - n))
}
