// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package ash0 implements Nintendo's ASH0 container format, a Huffman+LZ77
// hybrid compression scheme used on the Wii. It exposes pure in-memory
// Compress/Decompress functions over byte buffers; command-line argument
// parsing, file I/O, and path defaulting are left to the cmd/ drivers
// (spec.md §1).
package ash0

const (
	// MinSymbolBits and MaxSymbolBits bound the symbol alphabet width S
	// (spec.md §3: "S ∈ [9, 16]"). Values [0,256) are literal bytes;
	// values [256, 1<<S) are LZ copy-lengths offset by 3.
	MinSymbolBits = 9
	MaxSymbolBits = 16

	// DefaultSymbolBits is the width used when a caller doesn't care
	// (spec.md §6 CLI defaults, "lenbits=9").
	DefaultSymbolBits = 9

	// MinDistanceBits and MaxDistanceBits bound the distance alphabet
	// width D (spec.md §3: "D ∈ [1, 24]").
	MinDistanceBits = 1
	MaxDistanceBits = 24

	// DefaultDistanceBits is the width used when a caller doesn't care
	// (spec.md §6 CLI defaults, "distbits=11").
	DefaultDistanceBits = 11

	// literalLimit is the first symbol ID that denotes an LZ copy-length
	// rather than a literal byte.
	literalLimit = 256

	// minMatchLen is the shortest back-reference the format can encode;
	// anything shorter is cheaper to emit as literals.
	minMatchLen = 3

	// maxInputSize is the largest payload Compress accepts: the
	// container's uncompressed_size field is 24 bits wide (spec.md §3,
	// §4.10 "Input-size limit").
	maxInputSize = 1<<24 - 1
)

// maxMatchLen returns the longest copy length representable under a symbol
// alphabet of width symBits: symbol 1<<symBits - 1 maps to length
// (1<<symBits - 1) - 256 + 3.
func maxMatchLen(symBits uint32) int {
	return int(1<<symBits-1) - literalLimit + minMatchLen
}

// maxDistance returns the longest back-reference distance representable
// under a distance alphabet of width distBits: encoded symbol 1<<distBits-1
// represents distance (1<<distBits-1)+1.
func maxDistance(distBits uint32) int {
	return int(1<<distBits-1) + 1
}

// Level is a named compression-effort preset mapping to a re-tokenization
// pass count, mirroring bzip2.BestSpeed/DefaultCompression/BestCompression
// in the teacher's own Writer API (spec.md §4.9's "passes" knob is unchanged
// by this; these are just named points on it).
type Level int

const (
	LevelFast    Level = 0 // Greedy tokenization only, no re-tokenization pass
	LevelDefault Level = 1
	LevelBest    Level = 3
)

// Config returns a Config with Passes set from l's named preset, the way
// bzip2.NewWriterLevel takes a BestSpeed/BestCompression constant rather
// than a raw pass count.
func (l Level) Config() Config {
	return Config{Passes: int(l)}
}

// Config holds the per-call parameters of spec.md §4.10: the symbol and
// distance alphabet widths and the number of optimal re-tokenization
// passes to run after the initial greedy tokenization.
type Config struct {
	SymbolBits   uint32 // S; 0 means DefaultSymbolBits
	DistanceBits uint32 // D; 0 means DefaultDistanceBits
	Passes       int    // Number of §4.9 re-tokenize+retrain passes
}

// withDefaults returns a copy of c with zero fields replaced by their
// documented defaults.
func (c Config) withDefaults() Config {
	if c.SymbolBits == 0 {
		c.SymbolBits = DefaultSymbolBits
	}
	if c.DistanceBits == 0 {
		c.DistanceBits = DefaultDistanceBits
	}
	return c
}

// Validate checks c's bounds (spec.md §3) before any allocation is made
// from them, so a bad width surfaces as an ash0.Error instead of an
// obscure slice-bounds panic deep inside tree construction.
func (c Config) Validate() error {
	c = c.withDefaults()
	if c.SymbolBits < MinSymbolBits || c.SymbolBits > MaxSymbolBits {
		return Error("symbol alphabet width out of range [9, 16]")
	}
	if c.DistanceBits < MinDistanceBits || c.DistanceBits > MaxDistanceBits {
		return Error("distance alphabet width out of range [1, 24]")
	}
	if c.Passes < 0 {
		return Error("negative pass count")
	}
	return nil
}
