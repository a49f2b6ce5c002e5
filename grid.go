package anyvec

import "go.llib.dev/anyvec/index"

// Grid adapts a slice of slices into a two-dimensional dense source.
// Rows may have different lengths; a position is present when both
// components fall within range.
//
//	g := anyvec.Grid[int]{
//		{0, 1, 2, 3},
//		{10, 11, 12, 13},
//	}
//	g.At(index.Of2(1, 3)) // 13, true
//	g.At(index.Of2(2, 0)) // 0, false
//
// For deeper nesting, or for mixing container kinds per level,
// use Compose2, Compose3 and Compose4.
type Grid[T any] [][]T

// At implements Vec.
func (g Grid[T]) At(ij [2]int) (T, bool) {
	i, j := index.Split2(ij)
	if i < 0 || len(g) <= i {
		var zero T
		return zero, false
	}
	return Slice[T](g[i]).At(j)
}

// RefAt implements RefVec. The returned pointer aliases the grid element.
func (g Grid[T]) RefAt(ij [2]int) (*T, bool) {
	i, j := index.Split2(ij)
	if i < 0 || len(g) <= i {
		return nil, false
	}
	return Slice[T](g[i]).RefAt(j)
}
