// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/profile"
	"github.com/shenwei356/nwalign"
)

var version = "0.1.0"

func main() {
	app := filepath.Base(os.Args[0])
	usage := fmt.Sprintf(`
Needleman-Wunsch global alignment in Golang

 Author: Wei Shen <shenwei356@gmail.com>
   Code: https://github.com/shenwei356/nwalign
Version: v%s

Input file format:
  Pairs of lines, the query starts with '>' and the target starts with '<'.
  Example:
  >ATTGGAAAATAGGATTGGGGTTTGTTTATATTTGGGTTGAGGGATGTCCCACCTTCGTCGTCCTTACGTTTCCGGAAGGGAGTGGTTAGCTCGAAGCCCA
  <GATTGGAAAATAGGATGGGGTTTGTTTATATTTGGGTTGAGGGATGTCCCACCTTGTCGTCCTTACGTTTCCGGAAGGGAGTGGTTGCTCGAAGCCCA

Penalty file format (YAML):
  match: -3
  mismatch: 1
  gap: 5

Usage: 
  1. Align two sequences from the positional arguments.

        %s [options] <query seq> <target seq>

  2. Align sequence pairs from the input file (described above).

        %s [options] -i input.txt

Options/Flags:
`, version, app, app)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	help := flag.Bool("h", false, "print help message")
	infile := flag.String("i", "", "input file. ")
	banded := flag.Bool("b", false, "use banded alignment")
	bandWidth := flag.Int("d", nwalign.DefaultBandWidth, "band half-width of banded alignment")
	alignLength := flag.Int("l", -1, "only align the first l characters of each sequence, -1 for whole sequences")
	penaltyFile := flag.String("c", "", "YAML file of penalties")
	noOutput := flag.Bool("N", false, "do not output alignment (for benchmark)")
	plotTable := flag.Bool("t", false, "print the dynamic programming table")

	pprofCPU := flag.Bool("p", false, "cpu pprof. go tool pprof -http=:8080 cpu.pprof")
	pprofMem := flag.Bool("m", false, "mem pprof. go tool pprof -http=:8080 mem.pprof")

	flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	if *help {
		flag.Usage()
		return
	}

	// go tool pprof -http=:8080 cpu.pprof
	if *pprofCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *pprofMem {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	penalties := &nwalign.DefaultPenalties
	if *penaltyFile != "" {
		var err error
		penalties, err = nwalign.ReadPenalties(*penaltyFile)
		checkError(err)
	}
	glog.V(1).Infof("penalties: %s", penalties)

	outfh := bufio.NewWriter(os.Stdout)

	algn := nwalign.NewWithPenalties(penalties, &nwalign.Options{
		Banded:    *banded,
		BandWidth: *bandWidth,
	})

	defer outfh.Flush()

	var nPairs, nInf int

	falign2Seq := func(q, t string) {
		nPairs++
		_q, _t := []byte(q), []byte(t)
		if *alignLength >= 0 {
			_q = _q[:min(len(_q), *alignLength)]
			_t = _t[:min(len(_t), *alignLength)]
		}
		glog.V(2).Infof("pair %d: query length %d, target length %d", nPairs, len(_q), len(_t))

		if *plotTable {
			algn.Plot(_q, _t, outfh)
			fmt.Fprintln(outfh)
		}

		res := algn.Align(_q, _t)
		defer nwalign.RecycleAlignmentResult(res)

		if res.IsInf() {
			nInf++
			glog.V(1).Infof("pair %d: lengths differ by more than %d, no banded alignment",
				nPairs, algn.Options().BandWidth)
			if !*noOutput {
				fmt.Fprintf(outfh, "cost    inf\n")
				fmt.Fprintf(outfh, "%s\n\n", nwalign.NoAlignment)
			}
			return
		}

		if *noOutput {
			return
		}

		Q, A, T := res.AlignmentText()
		alen, matches, gaps, gapRegions := res.Stats()

		fmt.Fprintf(outfh, "query   %s\n", *Q)
		fmt.Fprintf(outfh, "        %s\n", *A)
		fmt.Fprintf(outfh, "target  %s\n", *T)
		fmt.Fprintf(outfh, "cost    %d\n", res.Cost)
		fmt.Fprintf(outfh, "cigar   %s\n", res.CIGAR())
		if alen > 0 {
			fmt.Fprintf(outfh, "query   %d-%d, target %d-%d\n", res.QBegin, res.QEnd, res.TBegin, res.TEnd)
			fmt.Fprintf(outfh, "length: %d, matches: %d (%.2f%%), gaps: %d, gap regions: %d\n",
				alen, matches, float64(matches)/float64(alen)*100, gaps, gapRegions)
		}
		fmt.Fprintln(outfh)

		nwalign.RecycleAlignmentText(Q, A, T)
	}

	var q, t string

	// two sequences from positional arguments

	if *infile == "" {
		if flag.NArg() != 2 {
			checkError(fmt.Errorf("if flag -i not given, please give me two sequences"))
		}
		q = flag.Arg(0)
		t = flag.Arg(1)

		falign2Seq(q, t)

		return
	}

	// sequence pairs from a file

	checkError(readPairs(*infile, falign2Seq))

	glog.V(1).Infof("%d pairs aligned, %d without banded alignment", nPairs, nInf)
}

// readPairs reads query and target pairs from the file, and calls fn for each pair.
func readPairs(file string, fn func(q, t string)) error {
	fh, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to read file: %s: %w", file, err)
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<30)
	var q, t string
	for scanner.Scan() {
		q = scanner.Text()
		if !scanner.Scan() {
			break
		}

		t = scanner.Text()
		if len(q) == 0 || len(t) == 0 {
			return fmt.Errorf("empty line found in file: %s", file)
		}

		fn(q[1:], t[1:])
	}
	if err = scanner.Err(); err != nil {
		return fmt.Errorf("something wrong in reading file: %s: %w", file, err)
	}
	return nil
}

func checkError(err error) {
	if err != nil {
		glog.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
