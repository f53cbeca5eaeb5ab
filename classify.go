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
)

// ErrOutOfBounds is returned when a classification would read outside
// the grid, which means the grid was not padded or a code is corrupt.
var ErrOutOfBounds = errors.New("classification block outside grid")

// Polarity decides which uniform color means empty.
type Polarity int

const (
	// EmptyIsBlack classifies all-empty blocks as Black and fully
	// occupied blocks as White.
	EmptyIsBlack Polarity = iota
	// EmptyIsWhite classifies all-empty blocks as White and fully
	// occupied blocks as Black.
	EmptyIsWhite
)

func (p Polarity) String() string {
	switch p {
	case EmptyIsBlack:
		return "empty-black"
	case EmptyIsWhite:
		return "empty-white"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// Measure decides how the contents of a block are scored.
type Measure int

const (
	// SumValues scores a block by the sum of its values. A block is full
	// only when the sum equals the pixel count, so values other than 0
	// and 1 produce Gray blocks, even single pixels.
	SumValues Measure = iota
	// CountOccupied scores a block by its number of nonzero values.
	CountOccupied
)

func (m Measure) String() string {
	switch m {
	case SumValues:
		return "sum"
	case CountOccupied:
		return "count"
	default:
		return fmt.Sprintf("Measure(%d)", int(m))
	}
}

// Classifier assigns colors to grid blocks.
type Classifier struct {
	Polarity Polarity
	Measure  Measure
}

// DefaultClassifier sums raw values and treats empty blocks as Black.
var DefaultClassifier = Classifier{Polarity: EmptyIsBlack, Measure: SumValues}

// EmptyColor returns the color of blocks with no occupied pixels.
func (c Classifier) EmptyColor() Color {
	if c.Polarity == EmptyIsWhite {
		return White
	}
	return Black
}

// FullColor returns the color of fully occupied blocks.
func (c Classifier) FullColor() Color {
	if c.Polarity == EmptyIsWhite {
		return Black
	}
	return White
}

// Classify returns the color of the block addressed by code at the given
// generation in a grid of resolution r. g must be 2^r on a side.
func (c Classifier) Classify(g *Grid, code Code, generation, r int) (Color, error) {
	row, col := CodeToPixel(code)
	side := (1 << uint(r)) >> uint(generation)
	if generation < 0 || generation > r || row < 0 || col < 0 ||
		row+side > g.Rows || col+side > g.Cols {
		return Gray, fmt.Errorf("lqtld.Classify: %w: code %d generation %d covers rows %d-%d, cols %d-%d of a %d×%d grid",
			ErrOutOfBounds, code, generation, row, row+side-1, col, col+side-1, g.Rows, g.Cols)
	}
	var score int
	for i := row; i < row+side; i++ {
		for _, v := range g.Row(i)[col : col+side] {
			if c.Measure == CountOccupied {
				if v != 0 {
					score++
				}
			} else {
				score += v
			}
		}
	}
	switch score {
	case 0:
		return c.EmptyColor(), nil
	case side * side:
		return c.FullColor(), nil
	default:
		return Gray, nil
	}
}
