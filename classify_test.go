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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, rows [][]int) *Grid {
	t.Helper()
	g, err := GridFromRows(rows)
	require.NoError(t, err)
	return g
}

func TestClassify(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
		{0, 1, 2, 0},
		{0, 0, 0, 3},
	})
	const r = 2

	tests := []struct {
		name       string
		classifier Classifier
		code       Code
		generation int
		want       Color
	}{
		{"empty black", DefaultClassifier, Interleave(0, 0), 1, Black},
		{"full white", DefaultClassifier, Interleave(0, 2), 1, White},
		{"mixed", DefaultClassifier, Interleave(2, 0), 1, Gray},
		{"root", DefaultClassifier, 0, 0, Gray},
		{"empty white", Classifier{Polarity: EmptyIsWhite}, Interleave(0, 0), 1, White},
		{"full black", Classifier{Polarity: EmptyIsWhite}, Interleave(0, 2), 1, Black},
		{"single pixel", DefaultClassifier, Interleave(2, 1), 2, White},
		{"sum of two is gray", DefaultClassifier, Interleave(2, 2), 2, Gray},
		{"count of two is full", Classifier{Measure: CountOccupied}, Interleave(2, 2), 2, White},
		{"count empty", Classifier{Measure: CountOccupied}, Interleave(2, 3), 2, Black},
		{"count mixed", Classifier{Measure: CountOccupied}, Interleave(2, 2), 1, Gray},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			have, err := test.classifier.Classify(g, test.code, test.generation, r)
			require.NoError(t, err)
			assert.Equal(t, test.want, have)

			again, err := test.classifier.Classify(g, test.code, test.generation, r)
			require.NoError(t, err)
			assert.Equal(t, have, again)
		})
	}
}

func TestClassifyOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)
	_, err := DefaultClassifier.Classify(g, 0, 0, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	g = NewGrid(4, 4)
	_, err = DefaultClassifier.Classify(g, Interleave(4, 0), 2, 2)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = DefaultClassifier.Classify(g, 0, 3, 2)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestClassifierColors(t *testing.T) {
	assert.Equal(t, Black, DefaultClassifier.EmptyColor())
	assert.Equal(t, White, DefaultClassifier.FullColor())
	c := Classifier{Polarity: EmptyIsWhite}
	assert.Equal(t, White, c.EmptyColor())
	assert.Equal(t, Black, c.FullColor())
	assert.Equal(t, "empty-white", EmptyIsWhite.String())
	assert.Equal(t, "count", CountOccupied.String())
}
