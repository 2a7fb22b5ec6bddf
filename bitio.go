// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ash0

import "github.com/NinjaCheetah/ash0/internal/ashbits"

// bitReader extracts bits MSB-first from a stream of 32-bit big-endian
// words. Unlike flate's bitReader (which buffers whole bytes off a
// byteReader and serves bits LSB-first), ASH0's container packs two
// independent such streams back to back in one buffer (see container.go),
// so a bitReader here is initialized at an arbitrary word-aligned offset
// into a shared, fully in-memory backing buffer rather than wrapping an
// io.Reader.
type bitReader struct {
	src []byte // Backing buffer, shared with other bitReaders over the same container
	pos int    // Byte offset of the next word to load
	end int    // One past the last valid byte in src

	word uint32 // Current 32-bit word, MSB-first
	nb   uint   // Number of bits already consumed from word
}

// init positions the reader at a 4-byte-aligned word boundary and preloads
// the first word. start must already be word-aligned; the container framer
// guarantees this (spec.md §4.1).
func (br *bitReader) init(src []byte, end, start int) {
	*br = bitReader{src: src, pos: start, end: end}
	br.loadWord()
}

// loadWord reads the next big-endian word and resets the consumed-bit
// count. It panics with ErrTruncated if fewer than 4 bytes remain.
func (br *bitReader) loadWord() {
	if br.pos+4 > br.end {
		panic(ErrTruncated)
	}
	br.word = ashbits.LoadUint32BE(br.src[br.pos : br.pos+4])
	br.pos += 4
	br.nb = 0
}

// readBit returns the next bit (MSB-first within each word), refilling from
// the next word when the current one is exhausted.
func (br *bitReader) readBit() uint32 {
	if br.nb == 32 {
		br.loadWord()
	}
	bit := (br.word >> (31 - br.nb)) & 1
	br.nb++
	return bit
}

// readBits returns the next n bits (1 <= n <= 32), MSB-first, which may span
// a word boundary.
func (br *bitReader) readBits(n uint) uint32 {
	var v uint32
	for n > 0 {
		if br.nb == 32 {
			br.loadWord()
		}
		avail := 32 - br.nb
		take := n
		if take > avail {
			take = avail
		}
		chunk := (br.word >> (avail - take)) & (uint32(1)<<take - 1)
		v = v<<take | chunk
		br.nb += take
		n -= take
	}
	return v
}

// ReadBit and ReadBits export readBit/readBits so *bitReader satisfies
// ashtree.BitReader without ashtree importing package ash0.
func (br *bitReader) ReadBit() uint32        { return br.readBit() }
func (br *bitReader) ReadBits(n uint) uint32 { return br.readBits(n) }

// bitWriter packs bits MSB-first into a stream of 32-bit big-endian words,
// growing buf as needed. It is the write-side mirror of bitReader: the
// compressor keeps one bitWriter per output stream (symbol stream, distance
// stream) and concatenates their bytes() once both are finalized.
type bitWriter struct {
	buf  []byte
	word uint32 // Word under construction, MSB-first
	nb   uint   // Number of bits already placed into word
}

// writeBit appends a single bit (0 or 1), flushing a completed word to buf.
func (bw *bitWriter) writeBit(b uint32) {
	bw.word |= (b & 1) << (31 - bw.nb)
	bw.nb++
	if bw.nb == 32 {
		bw.flushWord()
	}
}

// writeBits appends the low n bits of v (1 <= n <= 32), MSB-first.
func (bw *bitWriter) writeBits(v uint32, n uint) {
	for n > 0 {
		avail := 32 - bw.nb
		take := n
		if take > avail {
			take = avail
		}
		chunk := (v >> (n - take)) & (uint32(1)<<take - 1)
		bw.word |= chunk << (avail - take)
		bw.nb += take
		n -= take
		if bw.nb == 32 {
			bw.flushWord()
		}
	}
}

// WriteBit and WriteBits export writeBit/writeBits so *bitWriter satisfies
// ashtree.BitWriter.
func (bw *bitWriter) WriteBit(b uint32)          { bw.writeBit(b) }
func (bw *bitWriter) WriteBits(v uint32, n uint) { bw.writeBits(v, n) }

// flushWord appends the current (possibly partial) word to buf in
// big-endian byte order and resets the word accumulator. Used both when a
// word fills up naturally and to finalize a trailing partial word.
func (bw *bitWriter) flushWord() {
	var b [4]byte
	ashbits.StoreUint32BE(b[:], bw.word)
	bw.buf = append(bw.buf, b[:]...)
	bw.word, bw.nb = 0, 0
}

// bytes finalizes the stream: any bits in a partial trailing word are
// zero-padded (they already are, since writeBit/writeBits only ever set
// bits, never clear them) and the word is flushed. The length of the
// returned slice is always a multiple of 4.
func (bw *bitWriter) bytes() []byte {
	if bw.nb > 0 {
		bw.flushWord()
	}
	return bw.buf
}
