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

package nwalign

import (
	"fmt"
	"io"
)

// Plot plots the dynamic programming table of aligning q and t
// as a tab-delimited text table.
//
// Rows are symbols of q, columns are symbols of t.
// A table cell contains the direction symbol and the cost.
// Symbols:
//
//	⊕    Origin
//	↑    From the left cell (i-1, j), a gap in t
//	←    From the above cell (i, j-1), a gap in q
//	↖    Match or mismatch
//
// Cells out of the band are shown as ".".
// Nothing but a line of NoAlignment is written for an infeasible banded alignment.
func (algn *Aligner) Plot(q, t []byte, wtr io.Writer) {
	var tbl *Table
	if algn.opt.Banded {
		tbl = algn.fillBanded(q, t)
	} else {
		tbl = algn.fillFull(q, t)
	}
	if tbl == nil {
		fmt.Fprintln(wtr, NoAlignment)
		return
	}
	plotTable(tbl, q, t, wtr)
}

func plotTable(tbl *Table, q, t []byte, wtr io.Writer) {
	n, m := tbl.Dims()

	// sequence t
	fmt.Fprintf(wtr, "   \t ")
	for h := 0; h <= m; h++ {
		fmt.Fprintf(wtr, "\t%4d", h)
	}
	fmt.Fprintln(wtr)
	fmt.Fprintf(wtr, "   \t \t    ")
	for _, b := range t[:m] {
		fmt.Fprintf(wtr, "\t%4c", b)
	}
	fmt.Fprintln(wtr)

	var c Cell
	var ok bool
	for v := 0; v <= n; v++ {
		if v == 0 {
			fmt.Fprintf(wtr, "%3d\t ", v)
		} else {
			fmt.Fprintf(wtr, "%3d\t%c", v, q[v-1]) // a base in seq q
		}
		for h := 0; h <= m; h++ { // a row of the matrix
			c, ok = tbl.Get(v, h)
			if !ok {
				fmt.Fprintf(wtr, "\t   .")
			} else {
				fmt.Fprintf(wtr, "\t%c%3d", dirArrows[c.From], c.Cost)
			}
		}
		fmt.Fprintln(wtr)
	}
}
