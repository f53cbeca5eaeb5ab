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

import "math/bits"

// DefaultFill is the value padding cells get unless configured otherwise.
const DefaultFill = 1

// NeedsPadding reports whether g must be padded before it can be built
// into a quadtree.
func NeedsPadding(g *Grid) bool {
	_, err := g.Resolution()
	return err != nil
}

// PaddedSide returns the side of the grid a rows×cols grid is padded to:
// the smallest power of two strictly greater than the larger dimension.
func PaddedSide(rows, cols int) int {
	m := rows
	if cols > m {
		m = cols
	}
	return 1 << uint(bits.Len(uint(m)))
}

// Pad returns g if it is already square with a power-of-two side.
// Otherwise it returns a new grid of side PaddedSide with g in the
// top-left corner and every other cell set to fill.
func Pad(g *Grid, fill int) *Grid {
	if !NeedsPadding(g) {
		return g
	}
	n := PaddedSide(g.Rows, g.Cols)
	o := NewGrid(n, n)
	for i := range o.Values {
		o.Values[i] = fill
	}
	for row := 0; row < g.Rows; row++ {
		copy(o.Row(row), g.Row(row))
	}
	return o
}
