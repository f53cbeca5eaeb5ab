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

// Package lqtld builds linear quadtrees with level differences over
// binary occupancy grids.
//
// A linear quadtree stores only its leaves, each addressed by a location
// code that interleaves the bits of the leaf's row and column. Every leaf
// also records, for each cardinal direction, how many generations deeper
// or shallower its neighbor on that side is. Neighbor codes are computed
// with the quad location addition operator (QLAO) instead of following
// parent and child pointers, following Aizawa and Tanaka's construction
// algorithm.
package lqtld
