package anyvec

// Scalar represents a single value as an unbounded uniform source:
// every index of every supported dimension is present with the same value.
// All-zeros or all-ones inputs of an algorithm are the typical use,
// without allocating a backing container for them.
//
// The index type parameter only selects which dimensionality the source
// participates in; it carries no state.
type Scalar[I Index, T any] struct {
	Value T
}

// Const makes a uniform source out of a single value.
//
//	capacities := anyvec.Const[[2]int](42)
//	capacities.At(index.Of2(100, 5)) // 42, true
func Const[I Index, T any](v T) *Scalar[I, T] {
	return &Scalar[I, T]{Value: v}
}

// At implements Vec. It ignores the index.
func (s *Scalar[I, T]) At(I) (T, bool) {
	return s.Value, true
}

// RefAt implements RefVec. It ignores the index.
func (s *Scalar[I, T]) RefAt(I) (*T, bool) {
	return &s.Value, true
}
