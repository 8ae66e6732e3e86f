package board

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// step is a per-axis neighbour offset.
type step int8

const (
	stepNext step = iota
	stepPrev
	stepSame
)

var steps = [...]step{stepNext, stepPrev, stepSame}

// apply moves v by one step. Stepping back from 0 stays at 0.
func (s step) apply(v int) int {
	switch s {
	case stepNext:
		return v + 1
	case stepPrev:
		return max(v-1, 0)
	}
	return v
}

// Adjacent returns the flat indices of the tiles neighbouring (row, column)
// on a rows x columns board.
//
// Offsets are clamped at zero rather than discarded, and only the upper
// bounds are checked afterwards. For tiles on the first row or first column
// the clamped offsets land on the tile itself, so its own index is part of
// the result.
func Adjacent(row, column, rows, columns int) []int {
	set := mapset.New[int]()
	for _, rs := range steps {
		for _, cs := range steps {
			if rs == stepSame && cs == stepSame {
				continue
			}
			r, c := rs.apply(row), cs.apply(column)
			if r < rows && c < columns {
				set.Put(IndexFromCoord(r, c, columns))
			}
		}
	}

	out := make([]int, 0, set.Size())
	set.Each(func(i int) { out = append(out, i) })
	sort.Ints(out)
	return out
}

// IndexFromCoord converts (row, column) to a flat tile index.
func IndexFromCoord(row, column, columns int) int {
	return row*columns + column
}

// CoordFromIndex converts a flat tile index back to (row, column).
func CoordFromIndex(index, columns int) (int, int) {
	return index / columns, index % columns
}
