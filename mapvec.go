package anyvec

import "go.llib.dev/frameless/pkg/mapkit"

// Map adapts a Go map into a sparse keyed source.
// The key is either a single coordinate component (int) for one dimension,
// or the full composite coordinate ([2]int .. [4]int) for higher dimensions.
//
//	sparse := anyvec.Map[int, int]{1: 10, 2: 20}
//	sparse.At(1) // 10, true
//	sparse.At(0) // 0, false
//
//	matrix := anyvec.Map[[2]int, int]{{0, 1}: 14, {3, 6}: 42}
//	matrix.At([2]int{3, 6}) // 42, true
//
// A nil Map is a valid, everywhere-absent source.
type Map[K comparable, V any] map[K]V

// At implements Vec.
func (v Map[K, V]) At(k K) (V, bool) {
	return mapkit.Lookup(v, k)
}

// RefMap is the reference-capable map adapter.
// Go map elements are not addressable, so a map holding values cannot hand
// out element pointers; RefMap stores pointers instead.
type RefMap[K comparable, V any] map[K]*V

// RefAt implements RefVec.
func (v RefMap[K, V]) RefAt(k K) (*V, bool) {
	return mapkit.Lookup(v, k)
}
