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

// Direction tells which neighbor a cell is computed from.
type Direction uint8

const (
	// FromNone is only used by the origin cell (0, 0).
	FromNone Direction = iota
	// FromLeft means the cell (i-1, j), a symbol of seq1 against a gap.
	FromLeft
	// FromAbove means the cell (i, j-1), a gap against a symbol of seq2.
	FromAbove
	// FromDiag means the cell (i-1, j-1), a match or a mismatch.
	FromDiag
)

// step returns the coordinate of the predecessor.
func (d Direction) step(i, j int) (int, int) {
	switch d {
	case FromLeft:
		return i - 1, j
	case FromAbove:
		return i, j - 1
	case FromDiag:
		return i - 1, j - 1
	default:
		return i, j
	}
}

// GapSymbol is the gap marker in aligned strings.
const GapSymbol = '-'

var dirArrows []rune = []rune{'⊕', '↑', '←', '↖'} // for visualization

// for showing cells.
func (d Direction) String() string {
	switch d {
	case FromNone:
		return "None"
	case FromLeft:
		return "Left"
	case FromAbove:
		return "Above"
	case FromDiag:
		return "Diag"
	default:
		return "N/A"
	}
}
