package anyvec

// Empty is a zero-state source that is absent at every index of every
// supported dimension. It helps achieve the Null Object Pattern when a
// source is required but no data logically exists,
// e.g. a fully disconnected distance matrix.
//
//	var disconnected anyvec.Empty[[2]int, int]
//	disconnected.At(index.Of2(7, 42)) // 0, false
type Empty[I Index, T any] struct{}

// At implements Vec. It ignores the index and always reports absence.
func (Empty[I, T]) At(I) (T, bool) {
	var zero T
	return zero, false
}

// RefAt implements RefVec. It ignores the index and always reports absence.
func (Empty[I, T]) RefAt(I) (*T, bool) {
	return nil, false
}
