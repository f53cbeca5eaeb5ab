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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasks(t *testing.T) {
	assert.Equal(t, Code(0), XMask(0))
	assert.Equal(t, Code(0x5), XMask(2))
	assert.Equal(t, Code(0xA), YMask(2))
	assert.Equal(t, Code(0x55), XMask(4))
	assert.Equal(t, Code(0xAA), YMask(4))
	for r := 0; r <= MaxResolution; r++ {
		assert.Equal(t, Code(0), XMask(r)&YMask(r), "r=%d", r)
		assert.Equal(t, Code(uint64(1)<<uint(2*r)-1), XMask(r)|YMask(r), "r=%d", r)
	}
}

func TestInterleave(t *testing.T) {
	// Row bits are the odd positions.
	assert.Equal(t, Code(1), Interleave(0, 1))
	assert.Equal(t, Code(2), Interleave(1, 0))
	assert.Equal(t, Code(6), Interleave(1, 2))
	assert.Equal(t, Code(0xF), Interleave(3, 3))

	for row := 0; row < 32; row++ {
		for col := 0; col < 32; col++ {
			r, c := CodeToPixel(Interleave(row, col))
			if r != row || c != col {
				t.Fatalf("CodeToPixel(Interleave(%d, %d)) = (%d, %d)", row, col, r, c)
			}
		}
	}
	max := 1<<MaxResolution - 1
	for _, p := range [][2]int{{max, 0}, {0, max}, {max, max}, {123456789, 987654321 & max}} {
		r, c := CodeToPixel(Interleave(p[0], p[1]))
		assert.Equal(t, p[0], r)
		assert.Equal(t, p[1], c)
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, East, West.Opposite())
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, "south", South.String())
	assert.Equal(t, "Direction(7)", Direction(7).String())

	const r = 3
	assert.Equal(t, Code(1), DirectionVector(East, r))
	assert.Equal(t, Code(2), DirectionVector(North, r))
	assert.Equal(t, Code(0x15), DirectionVector(West, r))
	assert.Equal(t, Code(0x2A), DirectionVector(South, r))
	assert.Equal(t, Code(1<<4), ShiftedDirection(East, r, 1))
	assert.Equal(t, Code(0x15<<2), ShiftedDirection(West, r, 2))
}

func TestQLAO(t *testing.T) {
	const r = 4
	tx, ty := XMask(r), YMask(r)

	t.Run("carry", func(t *testing.T) {
		// Naive addition would carry the column into the row bits.
		c := Interleave(1, 1)
		assert.Equal(t, Code(4), c+1)
		assert.Equal(t, Interleave(1, 2), QLAO(c, tx, ty, ShiftedDirection(East, r, r)))
		assert.Equal(t, Interleave(2, 1), QLAO(c, tx, ty, ShiftedDirection(North, r, r)))
		assert.Equal(t, Interleave(1, 0), QLAO(c, tx, ty, ShiftedDirection(West, r, r)))
		assert.Equal(t, Interleave(0, 1), QLAO(c, tx, ty, ShiftedDirection(South, r, r)))
	})

	t.Run("repeated steps", func(t *testing.T) {
		for g := 0; g <= r; g++ {
			side := 1 << uint(r-g)
			cells := 1 << uint(g)
			for row := 0; row < cells; row++ {
				start := Interleave(row*side, 0)
				c := start
				for k := 1; k < cells; k++ {
					c = QLAO(c, tx, ty, ShiftedDirection(East, r, g))
					single := QLAO(start, tx, ty, Interleave(0, k*side))
					require.Equal(t, single, c, "g=%d row=%d k=%d", g, row, k)
					require.Equal(t, Interleave(row*side, k*side), c)
				}
			}
		}
	})

	t.Run("round trip", func(t *testing.T) {
		for g := 1; g <= r; g++ {
			side := 1 << uint(r-g)
			for row := 0; row < 1<<uint(g); row++ {
				for col := 0; col < 1<<uint(g); col++ {
					c := Interleave(row*side, col*side)
					e := QLAO(c, tx, ty, ShiftedDirection(East, r, g))
					require.Equal(t, c, QLAO(e, tx, ty, ShiftedDirection(West, r, g)))
					n := QLAO(c, tx, ty, ShiftedDirection(North, r, g))
					require.Equal(t, c, QLAO(n, tx, ty, ShiftedDirection(South, r, g)))
				}
			}
		}
	})
}

func TestQuadrant(t *testing.T) {
	const r = 3
	assert.Equal(t, Code(0), Quadrant(0, r, 0, 0))
	assert.Equal(t, Code(16), Quadrant(0, r, 0, 1))
	assert.Equal(t, Code(32), Quadrant(0, r, 0, 2))
	assert.Equal(t, Code(48), Quadrant(0, r, 0, 3))
	assert.Equal(t, Code(48|3), Quadrant(48, r, 2, 3))

	for q := 0; q < 4; q++ {
		row, col := CodeToPixel(Quadrant(0, r, 0, q))
		assert.Equal(t, (q>>1)*4, row, "quadrant %d", q)
		assert.Equal(t, (q&1)*4, col, "quadrant %d", q)
	}
}
