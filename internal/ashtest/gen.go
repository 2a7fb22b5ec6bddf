// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ashtest

// Repeats generates size bytes of synthetic data that heavily favors LZ77
// matching: most of the output is a copy from some earlier distance, with
// occasional runs of fresh random bytes, adapted from the teacher's
// testdata/repeats.go generator into a reusable function rather than a
// one-off data file (since nothing here may run `go generate`).
func Repeats(seed int, size int) []byte {
	r := NewRand(seed)
	var b []byte

	randLen := func() (l int) {
		p := r.Float32()
		switch {
		case p <= 0.15:
			l = 4 + r.Intn(4)
		case p <= 0.30:
			l = 8 + r.Intn(8)
		case p <= 0.45:
			l = 16 + r.Intn(16)
		case p <= 0.60:
			l = 32 + r.Intn(32)
		case p <= 0.75:
			l = 64 + r.Intn(64)
		case p <= 0.90:
			l = 128 + r.Intn(128)
		default:
			l = 256 + r.Intn(256)
		}
		return l
	}

	randDist := func() (d int) {
		for d == 0 || d > len(b) {
			p := r.Float32()
			switch {
			case p <= 0.1:
				d = 1
			case p <= 0.2:
				d = 2 + r.Intn(2)
			case p <= 0.3:
				d = 4 + r.Intn(4)
			case p <= 0.4:
				d = 8 + r.Intn(8)
			case p <= 0.5:
				d = 16 + r.Intn(16)
			case p <= 0.6:
				d = 32 + r.Intn(32)
			case p <= 0.7:
				d = 64 + r.Intn(64)
			case p <= 0.8:
				d = 128 + r.Intn(128)
			case p <= 0.9:
				d = 256 + r.Intn(256)
			default:
				d = 512 + r.Intn(512)
			}
		}
		return d
	}

	writeRand := func(l int) {
		for i := 0; i < l; i++ {
			b = append(b, byte(r.Int()))
		}
	}
	writeCopy := func(d, l int) {
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}

	writeRand(randLen())
	for len(b) < size {
		p := r.Float32()
		switch {
		case p <= 0.1:
			writeRand(randLen())
		case p <= 0.9:
			d, l := randDist(), randLen()
			for d <= l && len(b) > 0 {
				d, l = randDist(), randLen()
			}
			writeCopy(d, l)
		default:
			writeCopy(randDist(), randLen())
		}
	}
	return b[:size]
}

// englishWords is a small, skewed vocabulary (a few dozen common short
// words alongside a handful of long ones) used by EnglishLike to build
// prose that repeats at many different distances and lengths, rather than
// a single fixed phrase repeating at one fixed distance.
var englishWords = []string{
	"the", "a", "of", "and", "to", "in", "is", "it", "that", "was",
	"for", "on", "with", "as", "at", "by", "an", "be", "this", "which",
	"or", "from", "had", "not", "but", "what", "all", "were", "when", "your",
	"can", "said", "there", "use", "each", "she", "do", "how", "their", "if",
	"will", "up", "other", "about", "out", "many", "then", "them", "these", "so",
	"quick", "brown", "fox", "jumps", "over", "lazy", "dog", "pack", "box", "five",
	"dozen", "liquor", "jugs", "vexingly", "daft", "zebras", "jump", "boxing", "wizards", "quickly",
	"compression", "algorithm", "symbol", "distance", "alphabet", "container", "reference",
}

// EnglishLike returns size bytes of synthetic prose over a skewed
// vocabulary, a stand-in for the "64 KiB of English text" scenario in
// spec.md §8 when no real corpus file is available. Word choice is
// weighted toward the front of englishWords (a handful of common short
// words dominate, the way "the"/"a"/"of" dominate real text), which gives
// both short- and long-range repetition for the optimal re-tokenizer to
// exploit and skewed per-word code lengths for Huffman training to
// exploit, without degenerating into one fixed phrase repeating at one
// fixed distance — a single repeated block lets the greedy tokenizer
// already cover it near-optimally with one long self-overlapping copy per
// repetition, leaving nothing for re-tokenization to improve.
func EnglishLike(size int) []byte {
	r := NewRand(1)
	b := make([]byte, 0, size+32)
	for len(b) < size {
		// Skew selection toward the front of the list: square a uniform
		// [0,1) draw so low indices (common words) come up far more often
		// than high ones (rare words), mirroring natural word frequency.
		p := r.Float32()
		idx := int(p * p * float32(len(englishWords)))
		if idx >= len(englishWords) {
			idx = len(englishWords) - 1
		}
		b = append(b, englishWords[idx]...)
		b = append(b, ' ')
	}
	return b[:size]
}
