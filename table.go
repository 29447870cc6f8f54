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

import "math"

// Inf is the cost of an infeasible alignment.
const Inf = math.MaxInt

// Cell is one entry of the dynamic programming table.
type Cell struct {
	Cost int       // minimum cost of aligning the prefixes ending here
	From Direction // the neighbor the cost comes from
}

// Table stores the cells of one alignment in a row-major slice.
//
// For a full table, all (n+1)*(m+1) cells are stored.
// For a banded table with a half-width d, a row i only stores
// cells of j in [i-d, i+d], and the cell (i, j) is saved at
//
//	i*(2d+1) + (j-i+d)
//
// Cells out of the band are absent.
type Table struct {
	n, m  int // lengths of the two sequences
	d     int // band half-width, -1 for a full table
	width int // number of cells per row

	cells []Cell
}

// newFullTable creates a table covering all coordinates.
func newFullTable(n, m int) *Table {
	return &Table{
		n:     n,
		m:     m,
		d:     -1,
		width: m + 1,
		cells: make([]Cell, (n+1)*(m+1)),
	}
}

// newBandedTable creates a table only covering coordinates with |i-j| <= d.
func newBandedTable(n, m, d int) *Table {
	k := 2*d + 1
	return &Table{
		n:     n,
		m:     m,
		d:     d,
		width: k,
		cells: make([]Cell, (n+1)*k),
	}
}

// Banded tells if the table is banded.
func (tbl *Table) Banded() bool { return tbl.d >= 0 }

// Dims returns the lengths of the two sequences.
func (tbl *Table) Dims() (int, int) { return tbl.n, tbl.m }

// Has tells if the coordinate is stored in the table.
func (tbl *Table) Has(i, j int) bool {
	if i < 0 || j < 0 || i > tbl.n || j > tbl.m {
		return false
	}
	if tbl.d >= 0 {
		return abs(i-j) <= tbl.d
	}
	return true
}

// index converts a coordinate to the slice index, the coordinate must be valid.
func (tbl *Table) index(i, j int) int {
	if tbl.d >= 0 {
		return i*tbl.width + j - i + tbl.d
	}
	return i*tbl.width + j
}

// Get returns the cell at (i, j), and false if it is absent.
func (tbl *Table) Get(i, j int) (Cell, bool) {
	if !tbl.Has(i, j) {
		return Cell{Cost: Inf}, false
	}
	return tbl.cells[tbl.index(i, j)], true
}

// Set saves a cell, the coordinate must be in the table.
func (tbl *Table) Set(i, j int, cost int, from Direction) {
	c := &tbl.cells[tbl.index(i, j)]
	c.Cost = cost
	c.From = from
}

// Cost returns the cost of the terminal cell (n, m).
func (tbl *Table) Cost() int {
	c, _ := tbl.Get(tbl.n, tbl.m)
	return c.Cost
}

// initBorders fills the first row and the first column,
// up to limit cells along each axis.
func (tbl *Table) initBorders(gap int, limit int) {
	tbl.Set(0, 0, 0, FromNone)
	for i := 1; i <= min(tbl.n, limit); i++ {
		tbl.Set(i, 0, i*gap, FromLeft)
	}
	for j := 1; j <= min(tbl.m, limit); j++ {
		tbl.Set(0, j, j*gap, FromAbove)
	}
}

// fill computes the cell (i, j) from its three neighbors, where i, j > 0.
// Absent neighbors are never chosen.
// Ties are broken in the order of left, above, and diagonal.
func (tbl *Table) fill(i, j int, gap, diff int) {
	left, hasLeft := tbl.Get(i-1, j)
	above, hasAbove := tbl.Get(i, j-1)
	diag, _ := tbl.Get(i-1, j-1) // always exists in both layouts

	leftCost, aboveCost := Inf, Inf
	if hasLeft {
		leftCost = left.Cost + gap
	}
	if hasAbove {
		aboveCost = above.Cost + gap
	}
	diagCost := diag.Cost + diff

	switch {
	case hasLeft && leftCost <= aboveCost && leftCost <= diagCost:
		tbl.Set(i, j, leftCost, FromLeft)
	case hasAbove && aboveCost <= diagCost:
		tbl.Set(i, j, aboveCost, FromAbove)
	default:
		tbl.Set(i, j, diagCost, FromDiag)
	}
}
