// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command ashcomp compresses a payload into an ASH0 container (spec.md
// §6). As with ashdec, argument parsing and file I/O live here rather
// than in the ash0 package.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/NinjaCheetah/ash0"
	"github.com/dsnet/golib/strconv"
)

func main() {
	os.Exit(run())
}

func run() int {
	distBits := flag.Uint("d", ash0.DefaultDistanceBits, "distance alphabet width")
	symBits := flag.Uint("l", ash0.DefaultSymbolBits, "symbol/length alphabet width")
	passes := flag.Int("c", 0, "optimal re-tokenization passes")
	outPath := flag.String("o", "", "output path (default: <infile>.ash)")
	verbose := flag.Bool("v", false, "report input/output sizes")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ashcomp <infile> [-o path] [-d distbits] [-l lenbits] [-c passes] [-v]")
		return 1
	}
	inPath := flag.Arg(0)
	if *outPath == "" {
		*outPath = inPath + ".ash"
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ashcomp:", err)
		return 1
	}

	cfg := ash0.Config{
		SymbolBits:   uint32(*symBits),
		DistanceBits: uint32(*distBits),
		Passes:       *passes,
	}
	out, err := ash0.Compress(data, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ashcomp:", err)
		return 1
	}

	if err := os.WriteFile(*outPath, out, 0644); err != nil {
		fmt.Fprintln(os.Stderr, "ashcomp:", err)
		return 1
	}

	if *verbose {
		in := strconv.FormatPrefix(float64(len(data)), strconv.Base1024, 2)
		on := strconv.FormatPrefix(float64(len(out)), strconv.Base1024, 2)
		ratio := 100 * float64(len(out)) / float64(max(1, len(data)))
		fmt.Fprintln(os.Stderr, strings.Join([]string{
			inPath + ": " + in + "B", "->", *outPath + ": " + on + "B",
			fmt.Sprintf("(%.1f%%)", ratio),
		}, " "))
	}
	return 0
}
