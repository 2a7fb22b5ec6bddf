// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ash0

import "github.com/NinjaCheetah/ash0/internal/ashtree"

// trainTrees builds the symbol and distance Huffman trees from a token
// sequence's frequency histogram (spec.md §4.10 step 2): a literal
// contributes to its own byte symbol, a reference contributes to its
// length symbol and, separately, its distance symbol.
func trainTrees(toks []token, symBits, distBits uint32) (symTree, distTree *ashtree.Tree) {
	symFreq := make([]uint64, 1<<symBits)
	distFreq := make([]uint64, 1<<distBits)
	for _, t := range toks {
		symFreq[t.symbol()]++
		if t.isMatch() {
			distFreq[t.distSymbol()]++
		}
	}
	return ashtree.Build(symBits, symFreq), ashtree.Build(distBits, distFreq)
}

// totalBits sums the encoded bit cost of toks under symTree/distTree, for
// checking whether re-tokenizing actually helped. Compress does not call
// it; the bit-level encoder emits codes directly via Tree.EncodeSymbol.
func totalBits(toks []token, symTree, distTree *ashtree.Tree) uint64 {
	var n uint64
	for _, t := range toks {
		n += uint64(symTree.Depth[t.symbol()])
		if t.isMatch() {
			n += uint64(distTree.Depth[t.distSymbol()])
		}
	}
	return n
}

// Compress encodes buf as an ASH0 container (spec.md §4.10): a greedy
// tokenization, trained trees, cfg.Passes rounds of the optimal
// re-tokenizer re-trained each round, and finally the two bit streams
// concatenated behind the container header.
func Compress(buf []byte, cfg Config) (out []byte, err error) {
	defer errRecover(&err)

	cfg = cfg.withDefaults()
	if verr := cfg.Validate(); verr != nil {
		return nil, verr
	}
	if len(buf) > maxInputSize {
		return nil, ErrInputTooLarge
	}

	toks := tokenize(buf, cfg.SymbolBits, cfg.DistanceBits)
	symTree, distTree := trainTrees(toks, cfg.SymbolBits, cfg.DistanceBits)

	for i := 0; i < cfg.Passes; i++ {
		next := retokenize(buf, symTree, distTree)
		nextSym, nextDist := trainTrees(next, cfg.SymbolBits, cfg.DistanceBits)
		toks, symTree, distTree = next, nextSym, nextDist
	}

	var symW, distW bitWriter
	symTree.Serialize(&symW)
	for _, t := range toks {
		symTree.EncodeSymbol(&symW, t.symbol())
	}
	symBytes := symW.bytes()

	distTree.Serialize(&distW)
	for _, t := range toks {
		if t.isMatch() {
			distTree.EncodeSymbol(&distW, t.distSymbol())
		}
	}
	distBytes := distW.bytes()

	distOffset := uint32(hdrSize + len(symBytes))
	out = make([]byte, 0, hdrSize+len(symBytes)+len(distBytes))
	out = append(out, writeHeader(uint32(len(buf)), distOffset)...)
	out = append(out, symBytes...)
	out = append(out, distBytes...)
	return out, nil
}
