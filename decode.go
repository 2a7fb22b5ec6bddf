// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ash0

import "github.com/NinjaCheetah/ash0/internal/ashtree"

// deserializeTree wraps ashtree.Deserialize so that a mismatched-alphabet-
// width stream (spec.md §8 scenario 4, "Pokémon Ranch mode") surfaces as
// this package's own ErrTruncated rather than leaking internal/ashtree's
// ErrMalformed across the public API boundary: ashtree.Error is a distinct
// type from ash0.Error, but errRecover's `case error:` branch would happily
// pass either straight through as-is, so the translation has to happen
// here, before the panic reaches the deferred errRecover in Decompress.
func deserializeTree(br ashtree.BitReader, width uint32) (t *ashtree.Tree) {
	defer func() {
		switch ex := recover().(type) {
		case nil:
		case ashtree.Error:
			panic(ErrTruncated)
		default:
			panic(ex)
		}
	}()
	return ashtree.Deserialize(br, width)
}

// Decompress expands an ASH0 container produced with the given alphabet
// widths back into its original payload (spec.md §4.5). cfg.Passes plays
// no part in decoding, though Validate still rejects a negative value;
// cfg.SymbolBits/DistanceBits must
// match the values the container was compressed with — the format itself
// carries no record of them, so a mismatch decodes the wrong tree shape
// and is caught only indirectly, as TruncatedStream or InvalidReference
// (spec.md §8 scenario 4, "Pokémon Ranch mode").
//
// Internally this follows the teacher's errRecover convention: bitReader
// and the main loop panic with an ash0.Error on any violation, and the
// deferred recover here turns that into a normal error return.
func Decompress(data []byte, cfg Config) (out []byte, err error) {
	defer errRecover(&err)

	cfg = cfg.withDefaults()
	if verr := cfg.Validate(); verr != nil {
		return nil, verr
	}

	hdr, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	var symR, distR bitReader
	symR.init(data, len(data), symStreamStart)
	distR.init(data, len(data), int(hdr.distStreamOffset))

	symTree := deserializeTree(&symR, cfg.SymbolBits)
	distTree := deserializeTree(&distR, cfg.DistanceBits)

	out = make([]byte, 0, hdr.uncompressedSize)
	for uint32(len(out)) < hdr.uncompressedSize {
		sym := symTree.DecodeSymbol(&symR)
		if sym < literalLimit {
			out = append(out, byte(sym))
			continue
		}

		length := lengthForSymbol(sym)
		dsym := distTree.DecodeSymbol(&distR)
		dist := distanceForSymbol(dsym)

		if dist < 1 || dist > len(out) {
			panic(ErrInvalidReference)
		}
		if remaining := int(hdr.uncompressedSize) - len(out); length > remaining {
			panic(ErrInvalidReference)
		}
		// Byte-by-byte, not a bulk copy(), so that length > dist
		// self-overlapping runs repeat correctly (spec.md §4.5).
		for i := 0; i < length; i++ {
			out = append(out, out[len(out)-dist])
		}
	}
	return out, nil
}
