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
	"sort"
)

// leafRef points from a location code to the arena slot of the live cell
// holding it.
type leafRef struct {
	code Code
	slot int
}

// leafList is the frontier in location-code order. Codes of live cells
// are unique because the frontier tiles the grid.
type leafList []leafRef

func (l *leafList) len() int {
	return len(*l)
}

// search returns the index where code is or should be.
func (l *leafList) search(code Code) int {
	return sort.Search(len(*l), func(i int) bool {
		return (*l)[i].code >= code
	})
}

// add inserts the cell at the given arena slot.
func (l *leafList) add(code Code, slot int) {
	i := l.search(code)
	if i < len(*l) && (*l)[i].code == code {
		panic(fmt.Errorf("lqtld: code %d is already in the frontier", code))
	}
	(*l) = append((*l), leafRef{})
	copy((*l)[i+1:], (*l)[i:])
	(*l)[i] = leafRef{code: code, slot: slot}
}

// delete removes code from the list.
func (l *leafList) delete(code Code) {
	i := l.search(code)
	if i == len(*l) || (*l)[i].code != code {
		panic(fmt.Errorf("lqtld: tried to delete code %d that is not in the frontier", code))
	}
	copy((*l)[i:], (*l)[i+1:])
	(*l) = (*l)[:len(*l)-1]
}

// slots returns the arena slots in code order.
func (l *leafList) slots() []int {
	o := make([]int, len(*l))
	for i, r := range *l {
		o[i] = r.slot
	}
	return o
}
