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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableFull(t *testing.T) {
	algn := New()
	tbl := algn.fillFull([]byte("AA"), []byte("AC"))

	assert.False(t, tbl.Banded())
	n, m := tbl.Dims()
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, m)

	// borders
	c, ok := tbl.Get(0, 0)
	assert.True(t, ok)
	assert.Equal(t, Cell{Cost: 0, From: FromNone}, c)
	for i := 1; i <= 2; i++ {
		c, _ = tbl.Get(i, 0)
		assert.Equal(t, Cell{Cost: i * 5, From: FromLeft}, c)
		c, _ = tbl.Get(0, i)
		assert.Equal(t, Cell{Cost: i * 5, From: FromAbove}, c)
	}

	c, _ = tbl.Get(1, 1)
	assert.Equal(t, Cell{Cost: -3, From: FromDiag}, c)
	c, _ = tbl.Get(1, 2)
	assert.Equal(t, Cell{Cost: 2, From: FromAbove}, c)
	c, _ = tbl.Get(2, 1) // left and diagonal are both 2, left wins
	assert.Equal(t, Cell{Cost: 2, From: FromLeft}, c)
	c, _ = tbl.Get(2, 2)
	assert.Equal(t, Cell{Cost: -2, From: FromDiag}, c)
	assert.Equal(t, -2, tbl.Cost())

	c, ok = tbl.Get(3, 2)
	assert.False(t, ok)
	assert.Equal(t, Inf, c.Cost)
}

func TestTableBanded(t *testing.T) {
	tbl := newBandedTable(5, 4, 1)
	assert.True(t, tbl.Banded())

	assert.True(t, tbl.Has(0, 0))
	assert.True(t, tbl.Has(0, 1))
	assert.False(t, tbl.Has(0, 2))
	assert.True(t, tbl.Has(3, 2))
	assert.True(t, tbl.Has(5, 4))
	assert.False(t, tbl.Has(5, 5))
	assert.False(t, tbl.Has(6, 5))
	assert.False(t, tbl.Has(-1, 0))

	// every cell in the band has its own slot
	var cost int
	for i := 0; i <= 5; i++ {
		for j := 0; j <= 4; j++ {
			if tbl.Has(i, j) {
				tbl.Set(i, j, cost, FromDiag)
				cost++
			}
		}
	}
	cost = 0
	for i := 0; i <= 5; i++ {
		for j := 0; j <= 4; j++ {
			if tbl.Has(i, j) {
				c, _ := tbl.Get(i, j)
				assert.Equal(t, cost, c.Cost)
				cost++
			}
		}
	}
}

func TestTableBandedFill(t *testing.T) {
	algn := NewWithPenalties(nil, &Options{Banded: true, BandWidth: 1})

	assert.Nil(t, algn.fillBanded([]byte("AAA"), []byte("A")))

	tbl := algn.fillBanded([]byte("ACGT"), []byte("ACG"))
	if assert.NotNil(t, tbl) {
		c, ok := tbl.Get(2, 0)
		assert.False(t, ok)
		assert.Equal(t, Inf, c.Cost)

		// (1, 2) has no left neighbor in the band
		c, _ = tbl.Get(1, 2)
		assert.Equal(t, Cell{Cost: 2, From: FromAbove}, c)

		assert.Equal(t, -9+5, tbl.Cost())
	}
}

func TestDirectionStep(t *testing.T) {
	i, j := FromLeft.step(3, 3)
	assert.Equal(t, [2]int{2, 3}, [2]int{i, j})
	i, j = FromAbove.step(3, 3)
	assert.Equal(t, [2]int{3, 2}, [2]int{i, j})
	i, j = FromDiag.step(3, 3)
	assert.Equal(t, [2]int{2, 2}, [2]int{i, j})
	i, j = FromNone.step(3, 3)
	assert.Equal(t, [2]int{3, 3}, [2]int{i, j})

	assert.Equal(t, "Left", FromLeft.String())
	assert.Equal(t, "N/A", Direction(9).String())
}
