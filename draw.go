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

// BorderMarker is the value DrawUsableCells writes on leaf borders. It
// renders as the RGB color #e74cff.
const BorderMarker = 0xe74cff

// DrawCellBorder overwrites the one-pixel inner border of c in g with
// marker. g must have the side of the tree c belongs to, whose resolution
// is r.
func DrawCellBorder(g *Grid, c Cell, r, marker int) {
	row, col := c.Origin()
	side := c.Side(r)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			if i == 0 || j == 0 || i == side-1 || j == side-1 {
				g.Set(row+i, col+j, marker)
			}
		}
	}
}

// Usable reports whether c holds occupied pixels and is coarse enough to
// be worth outlining: it is not the empty color and lies at least two
// generations above the finest.
func (t *Tree) Usable(c Cell) bool {
	return c.Color != t.classifier.EmptyColor() && c.Generation < t.r-1
}

// DrawUsableCells outlines every usable leaf of t in g and returns how
// many were drawn. Drawing into t.Grid() changes the values the tree was
// classified from, so Validate will fail afterwards; draw into a Copy to
// keep the tree checkable.
func DrawUsableCells(g *Grid, t *Tree, marker int) int {
	var n int
	for _, c := range t.Leaves() {
		if t.Usable(c) {
			DrawCellBorder(g, c, t.r, marker)
			n++
		}
	}
	return n
}
