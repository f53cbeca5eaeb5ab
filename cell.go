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
	"fmt"
	"strconv"
)

// Color is the classification of a cell.
type Color int

// Cell colors. Which of White and Black means "empty" is decided by the
// Classifier polarity.
const (
	White Color = iota
	Black
	Gray
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Black:
		return "B"
	case Gray:
		return "G"
	default:
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
}

// LevelDiff is the generation difference between a cell and its neighbor
// in one direction. The zero value is NoNeighbor, which marks the grid
// boundary or an undetermined neighbor and is never updated.
type LevelDiff struct {
	diff int
	ok   bool
}

// NoNeighbor is the LevelDiff of a side facing the grid boundary.
var NoNeighbor = LevelDiff{}

// Diff returns a known level difference of n.
func Diff(n int) LevelDiff {
	return LevelDiff{diff: n, ok: true}
}

// Get returns the difference and whether it is known.
func (l LevelDiff) Get() (int, bool) {
	return l.diff, l.ok
}

// Known reports whether l holds a difference rather than NoNeighbor.
func (l LevelDiff) Known() bool {
	return l.ok
}

// add returns l shifted by n, or NoNeighbor unchanged.
func (l LevelDiff) add(n int) LevelDiff {
	if !l.ok {
		return l
	}
	return LevelDiff{diff: l.diff + n, ok: true}
}

func (l LevelDiff) String() string {
	if !l.ok {
		return "-"
	}
	return strconv.Itoa(l.diff)
}

// Cell is one quadrant in the linear quadtree.
type Cell struct {
	Code       Code
	Generation int
	Color      Color

	// LevelDiffs holds the level difference to the neighbor in each
	// direction, indexed by Direction.
	LevelDiffs [4]LevelDiff
}

// LevelDiff returns the level difference in direction d.
func (c *Cell) LevelDiff(d Direction) LevelDiff {
	return c.LevelDiffs[d]
}

// Side returns the edge length in pixels of c in a grid of resolution r.
func (c *Cell) Side(r int) int {
	return 1 << uint(r-c.Generation)
}

// Origin returns the row and column of the top-left pixel of c.
func (c *Cell) Origin() (row, col int) {
	return CodeToPixel(c.Code)
}

func (c Cell) String() string {
	return fmt.Sprintf("[%d %d %s %s %s %s %s]", c.Code, c.Generation, c.Color,
		c.LevelDiffs[East], c.LevelDiffs[North], c.LevelDiffs[West], c.LevelDiffs[South])
}

// newRoot returns the cell covering the whole grid.
func newRoot() Cell {
	return Cell{Color: Gray}
}
