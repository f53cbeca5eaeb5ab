/*
Copyright © 2026 the lqtld authors.
This file is part of lqtld.

lqtld is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

lqtld is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with lqtld.  If not, see <http://www.gnu.org/licenses/>.
*/

package lqtld

import (
	"errors"
	"fmt"
	"math/bits"
)

// Precondition errors for grids handed to Build.
var (
	ErrNotSquare     = errors.New("grid is not square")
	ErrNotPowerOfTwo = errors.New("grid side is not a power of two")
	ErrResolution    = fmt.Errorf("grid resolution exceeds %d", MaxResolution)
)

// Grid is a row-major matrix of non-negative values. Zero is empty and
// anything else is occupied.
type Grid struct {
	Rows, Cols int
	Values     []int
}

// NewGrid returns an all-zero grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{Rows: rows, Cols: cols, Values: make([]int, rows*cols)}
}

// GridFromRows copies a slice of equal-length rows into a Grid.
func GridFromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 {
		return NewGrid(0, 0), nil
	}
	g := NewGrid(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("lqtld.GridFromRows: row %d has %d columns; want %d", i, len(row), g.Cols)
		}
		copy(g.Values[i*g.Cols:], row)
	}
	return g, nil
}

// At returns the value at (row, col).
func (g *Grid) At(row, col int) int {
	return g.Values[row*g.Cols+col]
}

// Set sets the value at (row, col).
func (g *Grid) Set(row, col, v int) {
	g.Values[row*g.Cols+col] = v
}

// Row returns the slice backing one row.
func (g *Grid) Row(row int) []int {
	return g.Values[row*g.Cols : (row+1)*g.Cols]
}

// Copy returns a deep copy of g.
func (g *Grid) Copy() *Grid {
	o := &Grid{Rows: g.Rows, Cols: g.Cols, Values: make([]int, len(g.Values))}
	copy(o.Values, g.Values)
	return o
}

// Square reports whether g has as many rows as columns.
func (g *Grid) Square() bool {
	return g.Rows == g.Cols
}

// Resolution returns r such that g is 2^r × 2^r, or an error if g cannot
// be turned into a quadtree without padding.
func (g *Grid) Resolution() (int, error) {
	if !g.Square() {
		return 0, fmt.Errorf("%w: %d×%d", ErrNotSquare, g.Rows, g.Cols)
	}
	n := g.Rows
	if n <= 0 || n&(n-1) != 0 {
		return 0, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	r := bits.TrailingZeros(uint(n))
	if r > MaxResolution {
		return 0, ErrResolution
	}
	if len(g.Values) != n*n {
		return 0, fmt.Errorf("lqtld: grid holds %d values; want %d", len(g.Values), n*n)
	}
	return r, nil
}
