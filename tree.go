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
	"bytes"
	"fmt"
	"io/ioutil"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
)

// Tree is a linear quadtree with level differences. After Build returns,
// the frontier holds only leaves and the Tree is read-only.
type Tree struct {
	r          int
	grid       *Grid
	classifier Classifier
	log        logrus.FieldLogger

	// cells is the arena every cell ever created lives in. Divided cells
	// stay in the arena but leave index and leaves.
	cells  []Cell
	index  map[Code]int
	leaves leafList

	// gray holds the arena slots of Gray cells not yet processed, oldest
	// first.
	gray []int

	divisions int
}

// BuildOption configures a Tree before construction starts.
type BuildOption func(*Tree) error

// WithClassifier sets the classifier used to color cells.
func WithClassifier(c Classifier) BuildOption {
	return func(t *Tree) error {
		if c.Polarity != EmptyIsBlack && c.Polarity != EmptyIsWhite {
			return fmt.Errorf("lqtld.WithClassifier: invalid polarity %v", c.Polarity)
		}
		if c.Measure != SumValues && c.Measure != CountOccupied {
			return fmt.Errorf("lqtld.WithClassifier: invalid measure %v", c.Measure)
		}
		t.classifier = c
		return nil
	}
}

// WithLogger sets where construction progress is logged. Divisions are
// logged at debug level and the summary at info level.
func WithLogger(l logrus.FieldLogger) BuildOption {
	return func(t *Tree) error {
		if l == nil {
			return fmt.Errorf("lqtld.WithLogger: logger is nil")
		}
		t.log = l
		return nil
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}

// Build constructs the linear quadtree of g. g must be square with a
// power-of-two side; use Pad first otherwise. Construction repeatedly
// takes the oldest unprocessed Gray cell and divides it until none remain.
// Gray cells at the finest generation cannot be divided: they update their
// neighbors like any other selected cell and stay as forced leaves.
func Build(g *Grid, opts ...BuildOption) (*Tree, error) {
	r, err := g.Resolution()
	if err != nil {
		return nil, fmt.Errorf("lqtld.Build: %w", err)
	}
	t := &Tree{
		r:          r,
		grid:       g,
		classifier: DefaultClassifier,
		log:        discardLogger(),
		index:      make(map[Code]int),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	root := newRoot()
	root.Color, err = t.classifier.Classify(g, root.Code, root.Generation, r)
	if err != nil {
		return nil, fmt.Errorf("lqtld.Build: %w", err)
	}
	t.insert(root)

	for len(t.gray) > 0 {
		slot := t.gray[0]
		t.gray = t.gray[1:]
		if t.cells[slot].Generation == r {
			// A Gray pixel cannot be divided. Its neighbors are still told
			// and it stays in the frontier as is.
			t.updateNeighbors(&t.cells[slot])
			continue
		}
		if err := t.divide(slot); err != nil {
			return nil, fmt.Errorf("lqtld.Build: %w", err)
		}
	}

	s := t.Stats()
	t.log.WithFields(logrus.Fields{
		"resolution": r,
		"leaves":     s.Leaves,
		"divisions":  s.Divisions,
		"white":      s.White,
		"black":      s.Black,
		"gray":       s.Gray,
	}).Info("lqtld: built quadtree")
	return t, nil
}

// insert adds c to the frontier.
func (t *Tree) insert(c Cell) {
	slot := len(t.cells)
	t.cells = append(t.cells, c)
	t.index[c.Code] = slot
	t.leaves.add(c.Code, slot)
	if c.Color == Gray {
		t.gray = append(t.gray, slot)
	}
}

// remove takes the cell in slot out of the frontier. The arena keeps it.
func (t *Tree) remove(slot int) {
	code := t.cells[slot].Code
	delete(t.index, code)
	t.leaves.delete(code)
}

// updateNeighbors tells each same-generation neighbor of c that the cells
// on c's side are about to be one generation deeper. Sides with no
// neighbor are skipped, and so are neighbors that are coarser than c
// because their codes do not match.
func (t *Tree) updateNeighbors(c *Cell) {
	tx, ty := XMask(t.r), YMask(t.r)
	for _, d := range Directions {
		if !c.LevelDiffs[d].Known() {
			continue
		}
		code := QLAO(c.Code, tx, ty, ShiftedDirection(d, t.r, c.Generation))
		slot, ok := t.index[code]
		if !ok {
			continue
		}
		n := &t.cells[slot]
		if n.Generation != c.Generation {
			continue
		}
		o := d.Opposite()
		n.LevelDiffs[o] = n.LevelDiffs[o].add(1)
	}
}

// divide replaces the cell in slot with its four children.
func (t *Tree) divide(slot int) error {
	p := t.cells[slot]

	// Children are classified first so a failure leaves the frontier intact.
	var children [4]Cell
	for q := range children {
		code := Quadrant(p.Code, t.r, p.Generation, q)
		color, err := t.classifier.Classify(t.grid, code, p.Generation+1, t.r)
		if err != nil {
			return err
		}
		children[q] = Cell{Code: code, Generation: p.Generation + 1, Color: color}
	}

	t.updateNeighbors(&p)
	t.remove(slot)

	// The gap to every existing neighbor shrinks by one from the
	// children's point of view.
	for _, d := range Directions {
		p.LevelDiffs[d] = p.LevelDiffs[d].add(-1)
	}
	t.cells[slot].LevelDiffs = p.LevelDiffs

	for q := range children {
		c := &children[q]
		if q&1 != 0 {
			c.LevelDiffs[East] = p.LevelDiffs[East]
			c.LevelDiffs[West] = Diff(0)
		} else {
			c.LevelDiffs[East] = Diff(0)
			c.LevelDiffs[West] = p.LevelDiffs[West]
		}
		if q&2 != 0 {
			c.LevelDiffs[North] = p.LevelDiffs[North]
			c.LevelDiffs[South] = Diff(0)
		} else {
			c.LevelDiffs[North] = Diff(0)
			c.LevelDiffs[South] = p.LevelDiffs[South]
		}
	}
	for q := range children {
		t.updateNeighbors(&children[q])
	}
	for _, c := range children {
		t.insert(c)
	}
	t.divisions++

	t.log.WithFields(logrus.Fields{
		"code":       p.Code,
		"generation": p.Generation,
		"children":   fmt.Sprintf("%s%s%s%s", children[0].Color, children[1].Color, children[2].Color, children[3].Color),
	}).Debug("lqtld: divided cell")
	return nil
}

// Resolution returns r, where the grid is 2^r pixels on a side.
func (t *Tree) Resolution() int {
	return t.r
}

// Side returns the grid side in pixels.
func (t *Tree) Side() int {
	return 1 << uint(t.r)
}

// Grid returns the grid the tree was built from.
func (t *Tree) Grid() *Grid {
	return t.grid
}

// Classifier returns the classifier the tree was built with.
func (t *Tree) Classifier() Classifier {
	return t.classifier
}

// Len returns the number of leaves.
func (t *Tree) Len() int {
	return t.leaves.len()
}

// Leaves returns a copy of the leaves in location-code order.
func (t *Tree) Leaves() []Cell {
	slots := t.leaves.slots()
	o := make([]Cell, len(slots))
	for i, s := range slots {
		o[i] = t.cells[s]
	}
	return o
}

// Lookup returns the leaf with the given code.
func (t *Tree) Lookup(code Code) (Cell, bool) {
	slot, ok := t.index[code]
	if !ok {
		return Cell{}, false
	}
	return t.cells[slot], true
}

// Bounds returns the pixel-space extent of c, with X as the column and Y
// as the row.
func (t *Tree) Bounds(c Cell) *geom.Bounds {
	row, col := c.Origin()
	side := float64(c.Side(t.r))
	return &geom.Bounds{
		Min: geom.Point{X: float64(col), Y: float64(row)},
		Max: geom.Point{X: float64(col) + side, Y: float64(row) + side},
	}
}

// Stats summarizes a tree.
type Stats struct {
	Leaves, White, Black, Gray int

	// Divisions is the number of cells that were split into children.
	Divisions int

	MaxGeneration int
}

// Stats returns counts of the leaves by color.
func (t *Tree) Stats() Stats {
	s := Stats{Leaves: t.Len(), Divisions: t.divisions}
	for _, slot := range t.leaves.slots() {
		c := t.cells[slot]
		switch c.Color {
		case White:
			s.White++
		case Black:
			s.Black++
		case Gray:
			s.Gray++
		}
		if c.Generation > s.MaxGeneration {
			s.MaxGeneration = c.Generation
		}
	}
	return s
}

// Validate checks that the leaves tile the grid exactly once, that no
// divisible Gray leaf remains and that every leaf's color matches its
// block.
func (t *Tree) Validate() error {
	n := t.Side()
	covered := make([]bool, n*n)
	count := 0
	for _, c := range t.Leaves() {
		if c.Generation < 0 || c.Generation > t.r {
			return fmt.Errorf("lqtld.Validate: cell %v has generation outside 0-%d", c, t.r)
		}
		if c.Color == Gray && c.Generation < t.r {
			return fmt.Errorf("lqtld.Validate: gray cell %v was not divided", c)
		}
		color, err := t.classifier.Classify(t.grid, c.Code, c.Generation, t.r)
		if err != nil {
			return fmt.Errorf("lqtld.Validate: %w", err)
		}
		if color != c.Color {
			return fmt.Errorf("lqtld.Validate: cell %v is %s but its block is %s", c, c.Color, color)
		}
		row, col := c.Origin()
		side := c.Side(t.r)
		for i := row; i < row+side; i++ {
			for j := col; j < col+side; j++ {
				if covered[i*n+j] {
					return fmt.Errorf("lqtld.Validate: pixel (%d, %d) is covered twice", i, j)
				}
				covered[i*n+j] = true
				count++
			}
		}
	}
	if count != n*n {
		return fmt.Errorf("lqtld.Validate: leaves cover %d of %d pixels", count, n*n)
	}
	return nil
}

func (t *Tree) String() string {
	b := new(bytes.Buffer)
	for i, c := range t.Leaves() {
		if i != 0 {
			b.WriteString("\n")
		}
		fmt.Fprint(b, c)
	}
	return b.String()
}
