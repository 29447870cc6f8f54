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

import "bytes"

// alignFull computes the exact global alignment, O(nm) time and space.
func (algn *Aligner) alignFull(q, t []byte) *AlignmentResult {
	res := NewAlignmentResult()

	// identical sequences are aligned with matches only.
	if bytes.Equal(q, t) {
		res.Cost = len(q) * algn.p.Match
		res.Q = append(res.Q, q...)
		res.T = append(res.T, t...)
		if len(q) > 0 {
			res.AddN('M', uint32(len(q)))
		}
		return res
	}

	tbl := algn.fillFull(q, t)
	res.Cost = tbl.Cost()
	traceback(tbl, q, t, res)
	return res
}

// fillFull fills all the cells of the table.
func (algn *Aligner) fillFull(q, t []byte) *Table {
	n, m := len(q), len(t)
	gap := algn.p.Gap

	tbl := newFullTable(n, m)
	tbl.initBorders(gap, max(n, m))

	var i, j int
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			tbl.fill(i, j, gap, algn.p.Diff(q[i-1], t[j-1]))
		}
	}
	return tbl
}
