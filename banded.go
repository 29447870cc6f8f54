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

// alignBanded computes the alignment in a band of 2d+1 cells per row,
// O(nd) time and space.
// The cost might be higher than the exact one if the optimal path leaves the band.
func (algn *Aligner) alignBanded(q, t []byte) *AlignmentResult {
	res := NewAlignmentResult()

	tbl := algn.fillBanded(q, t)
	if tbl == nil {
		res.Cost = Inf
		return res
	}

	res.Cost = tbl.Cost()
	traceback(tbl, q, t, res)
	return res
}

// fillBanded fills the cells in the band.
// It returns nil if the terminal cell is out of the band.
func (algn *Aligner) fillBanded(q, t []byte) *Table {
	n, m := len(q), len(t)
	d := algn.opt.BandWidth
	if abs(n-m) > d {
		return nil
	}
	// a wider band covers no more cells
	d = min(d, max(n, m))
	gap := algn.p.Gap

	tbl := newBandedTable(n, m, d)
	tbl.initBorders(gap, d)

	var i, j int
	for i = 1; i <= n; i++ {
		for j = max(1, i-d); j <= min(m, i+d); j++ {
			tbl.fill(i, j, gap, algn.p.Diff(q[i-1], t[j-1]))
		}
	}
	return tbl
}
