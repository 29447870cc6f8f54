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

import "github.com/samber/lo/mutable"

// traceback walks from the terminal cell back to the origin,
// and saves the aligned strings and CIGAR operations in res.
func traceback(tbl *Table, q, t []byte, res *AlignmentResult) {
	i, j := tbl.Dims()
	var c Cell
	var op byte
	for {
		c, _ = tbl.Get(i, j)
		if c.From == FromNone {
			break
		}

		switch c.From {
		case FromDiag:
			res.Q = append(res.Q, q[i-1])
			res.T = append(res.T, t[j-1])
			if q[i-1] == t[j-1] {
				op = 'M'
			} else {
				op = 'X'
			}
		case FromAbove: // gap in query
			res.Q = append(res.Q, GapSymbol)
			res.T = append(res.T, t[j-1])
			op = 'I'
		case FromLeft: // gap in target
			res.Q = append(res.Q, q[i-1])
			res.T = append(res.T, GapSymbol)
			op = 'D'
		}
		res.addOp(op)

		i, j = c.From.step(i, j)
	}

	mutable.Reverse(res.Q)
	mutable.Reverse(res.T)
}
