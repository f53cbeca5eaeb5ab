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

// Neighbor returns the location code of the neighbor of c in direction d,
// using the level difference c has recorded for that side. It returns
// false if c faces the grid boundary in direction d.
//
// A negative difference means the neighbor is coarser than c, so the code
// is first truncated to the neighbor's generation and then stepped at that
// size. Otherwise the step is made at c's own size, which addresses the
// neighbor itself or, when it is finer, the quadrant its leaves sit in.
//
// The builder never calls Neighbor. Level differences are only kept
// lazily consistent during construction, so the result reflects the
// neighbor as c last recorded it.
func (t *Tree) Neighbor(c Cell, d Direction) (Code, bool) {
	dd, ok := c.LevelDiffs[d].Get()
	if !ok {
		return 0, false
	}
	tx, ty := XMask(t.r), YMask(t.r)
	if dd < 0 {
		shift := uint(2 * (t.r - c.Generation - dd))
		code := c.Code >> shift << shift
		return QLAO(code, tx, ty, DirectionVector(d, t.r)<<shift), true
	}
	return QLAO(c.Code, tx, ty, ShiftedDirection(d, t.r, c.Generation)), true
}
