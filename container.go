// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ash0

import "github.com/NinjaCheetah/ash0/internal/ashbits"

// Container layout (spec.md §3, all multi-byte fields big-endian):
//
//	offset  size  field
//	0x00    4     magic = "ASH0"
//	0x04    4     uncompressed_size (low 24 bits; high byte reserved/0)
//	0x08    4     dist_stream_offset
//	0x0C    ...   sym_stream  (symbol tree, then symbol codes)
//	offs    ...   dist_stream (distance tree, then distance codes)
const (
	magic = "ASH0"

	hdrSize        = 0x0C
	hdrSizeOff     = 0x04
	hdrDistOff     = 0x08
	symStreamStart = hdrSize
)

// header is the decoded form of an ASH0 container's fixed-size prefix.
type header struct {
	uncompressedSize uint32
	distStreamOffset uint32
}

// readHeader validates the magic and decodes the two size fields. It
// mirrors bzip2.Reader.decodeBlock's pattern of validating a magic value
// before trusting the rest of a frame, but ASH0's magic sits in plain
// bytes rather than behind a bit reader, since it precedes both bit
// streams (spec.md §4.5 steps 1-3).
func readHeader(b []byte) (header, error) {
	if len(b) < hdrSize || string(b[0:4]) != magic {
		return header{}, ErrBadMagic
	}
	size := ashbits.LoadUint32BE(b[hdrSizeOff:hdrSizeOff+4]) & 0x00FFFFFF
	dist := ashbits.LoadUint32BE(b[hdrDistOff : hdrDistOff+4])
	return header{uncompressedSize: size, distStreamOffset: dist}, nil
}

// writeHeader returns the 12-byte header for a payload of the given
// uncompressed size, with the distance stream beginning at distOffset
// (spec.md §4.10 step 7).
func writeHeader(uncompressedSize, distOffset uint32) []byte {
	b := make([]byte, hdrSize)
	copy(b[0:4], magic)
	ashbits.StoreUint32BE(b[hdrSizeOff:hdrSizeOff+4], uncompressedSize&0x00FFFFFF)
	ashbits.StoreUint32BE(b[hdrDistOff:hdrDistOff+4], distOffset)
	return b
}
