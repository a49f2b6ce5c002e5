package anyvec

// Slice adapts a Go slice into a one-dimensional dense source.
// A position is present when it falls within the slice's length.
//
//	v := anyvec.Slice[int]{10, 11, 12, 13}
//	v.At(3) // 13, true
//	v.At(4) // 0, false
//
// Fixed-size arrays participate by slicing: anyvec.Slice[int](arr[:]).
type Slice[T any] []T

// At implements Vec.
func (v Slice[T]) At(i int) (T, bool) {
	if i < 0 || len(v) <= i {
		var zero T
		return zero, false
	}
	return v[i], true
}

// RefAt implements RefVec. The returned pointer aliases the slice element.
func (v Slice[T]) RefAt(i int) (*T, bool) {
	if i < 0 || len(v) <= i {
		return nil, false
	}
	return &v[i], true
}
