// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command ashdec decompresses an ASH0 container to the original payload
// (spec.md §6). Argument parsing, file I/O, and path defaulting are kept
// out of the ash0 package itself; this is the thin driver that supplies
// them.
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
	// Bound to SymbolBits, not DistanceBits: the original tooling this
	// format comes from had a variant that wired -l to the wrong field
	// (spec.md §9, "source-ambiguity in argument parsing"); this driver
	// uses the corrected binding.
	symBits := flag.Uint("l", ash0.DefaultSymbolBits, "symbol/length alphabet width")
	outPath := flag.String("o", "", "output path (default: <infile>.arc)")
	verbose := flag.Bool("v", false, "report input/output sizes")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ashdec <infile> [-o path] [-d distbits] [-l lenbits] [-v]")
		return 1
	}
	inPath := flag.Arg(0)
	if *outPath == "" {
		*outPath = inPath + ".arc"
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ashdec:", err)
		return 1
	}

	cfg := ash0.Config{SymbolBits: uint32(*symBits), DistanceBits: uint32(*distBits)}
	out, err := ash0.Decompress(data, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ashdec:", err)
		return 1
	}

	if err := os.WriteFile(*outPath, out, 0644); err != nil {
		fmt.Fprintln(os.Stderr, "ashdec:", err)
		return 1
	}

	if *verbose {
		in := strconv.FormatPrefix(float64(len(data)), strconv.Base1024, 2)
		on := strconv.FormatPrefix(float64(len(out)), strconv.Base1024, 2)
		fmt.Fprintln(os.Stderr, strings.Join([]string{
			inPath + ": " + in + "B", "->", *outPath + ": " + on + "B",
		}, " "))
	}
	return 0
}
