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

import "fmt"

// Code is a location code: the row and column of a cell's top-left
// pixel interleaved bit by bit, row bits in the odd positions and column
// bits in the even positions. Together with a generation it identifies
// a quadrant at any depth; the low 2·(r−generation) bits are always zero.
type Code uint64

// MaxResolution is the largest supported resolution r, where the grid
// side is 2^r. Codes need 2r bits.
const MaxResolution = 31

// Direction is one of the four cardinal directions, in the order used to
// index a cell's level differences. North is the +row direction and East
// is the +column direction.
type Direction int

// The directions a cell tracks level differences in.
const (
	East Direction = iota
	North
	West
	South
)

// Directions lists all directions in level-difference order.
var Directions = [4]Direction{East, North, West, South}

// Opposite returns the direction facing back toward d's origin.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// XMask returns the mask selecting the column bits of a code at
// resolution r: the pattern 01 repeated r times.
func XMask(r int) Code {
	return Code(spread(uint32(uint64(1)<<uint(r) - 1)))
}

// YMask returns the mask selecting the row bits of a code at
// resolution r: the pattern 10 repeated r times.
func YMask(r int) Code {
	return XMask(r) << 1
}

// QLAO is the quad location addition operator. It adds the interleaved
// direction vector dir to code so that a carry produced in the column
// bits cannot leak into the row bits and vice versa. tx and ty are the
// column and row masks.
func QLAO(code, tx, ty, dir Code) Code {
	return (((code | ty) + (dir & tx)) & tx) | (((code | tx) + (dir & ty)) & ty)
}

// DirectionVector returns the interleaved step vector for d at the finest
// resolution of an r-resolution grid. West and South are the two's
// complement of a unit step within their own axis.
func DirectionVector(d Direction, r int) Code {
	switch d {
	case East:
		return 1
	case North:
		return 2
	case West:
		return XMask(r)
	case South:
		return YMask(r)
	default:
		panic(fmt.Errorf("lqtld: invalid direction %d", int(d)))
	}
}

// ShiftedDirection returns the step vector for d scaled to the cell size
// of the given generation.
func ShiftedDirection(d Direction, r, generation int) Code {
	return DirectionVector(d, r) << uint(2*(r-generation))
}

// Interleave builds the location code of the pixel at (row, col).
func Interleave(row, col int) Code {
	return Code(spread(uint32(row))<<1 | spread(uint32(col)))
}

// CodeToPixel returns the row and column of the top-left pixel of the
// quadrant addressed by code. It is the inverse of Interleave.
func CodeToPixel(code Code) (row, col int) {
	return int(compact(uint64(code) >> 1)), int(compact(uint64(code)))
}

// Quadrant returns the code of child q (0 to 3) of the cell with the given
// code and generation. Bit 0 of q selects the east half and bit 1 the
// north half.
func Quadrant(code Code, r, generation, q int) Code {
	return code | Code(q)<<uint(2*(r-generation-1))
}

// spread moves bit i of v to bit 2i.
func spread(v uint32) uint64 {
	x := uint64(v)
	x = (x | x<<16) & 0x0000FFFF0000FFFF
	x = (x | x<<8) & 0x00FF00FF00FF00FF
	x = (x | x<<4) & 0x0F0F0F0F0F0F0F0F
	x = (x | x<<2) & 0x3333333333333333
	x = (x | x<<1) & 0x5555555555555555
	return x
}

// compact is the inverse of spread; odd bits of x are ignored.
func compact(x uint64) uint32 {
	x &= 0x5555555555555555
	x = (x | x>>1) & 0x3333333333333333
	x = (x | x>>2) & 0x0F0F0F0F0F0F0F0F
	x = (x | x>>4) & 0x00FF00FF00FF00FF
	x = (x | x>>8) & 0x0000FFFF0000FFFF
	x = (x | x>>16) & 0x00000000FFFFFFFF
	return uint32(x)
}
