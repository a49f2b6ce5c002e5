package anyvec

import (
	"fmt"
	"slices"

	"go.llib.dev/anyvec/index"
)

// Dense is a dense block of values with a fixed shape, stored row-major in
// a single backing slice. It generalizes the numeric n-dimensional array to
// arbitrary element types, at any supported rank.
// A coordinate is present exactly when every component falls within the
// declared shape.
//
// The zero value of Dense has no shape and is absent everywhere.
//
// For the dominant numeric two-dimensional case backed by a linear-algebra
// matrix, see the adapter/gonumvec package.
type Dense[I Index, T any] struct {
	shape   []int
	strides []int
	data    []T
}

// NewDense makes a dense source with the given shape over the given
// row-major data. It panics when the data length does not match the shape,
// as that is a programmer error rather than a runtime condition.
//
//	m := anyvec.NewDense([2]int{2, 3}, []int{1, 2, 3, 4, 5, 6})
//	m.At(index.Of2(1, 2)) // 6, true
//	m.At(index.Of2(2, 0)) // 0, false
func NewDense[I Index, T any](shape I, data []T) Dense[I, T] {
	comps := index.Comps(shape)
	size := 1
	for _, n := range comps {
		if n < 0 {
			panic(fmt.Sprintf("anyvec: negative shape component in %v", comps))
		}
		size *= n
	}
	if size != len(data) {
		panic(fmt.Sprintf("anyvec: shape %v expects %d values, got %d", comps, size, len(data)))
	}
	strides := make([]int, len(comps))
	stride := 1
	for d := len(comps) - 1; 0 <= d; d-- {
		strides[d] = stride
		stride *= comps[d]
	}
	return Dense[I, T]{shape: comps, strides: strides, data: data}
}

// Shape returns the declared shape components.
func (v Dense[I, T]) Shape() []int {
	return slices.Clone(v.shape)
}

// At implements Vec.
func (v Dense[I, T]) At(i I) (T, bool) {
	offset, ok := v.offset(i)
	if !ok {
		var zero T
		return zero, false
	}
	return v.data[offset], true
}

// RefAt implements RefVec. The returned pointer aliases the backing slice.
func (v Dense[I, T]) RefAt(i I) (*T, bool) {
	offset, ok := v.offset(i)
	if !ok {
		return nil, false
	}
	return &v.data[offset], true
}

func (v Dense[I, T]) offset(i I) (int, bool) {
	comps := index.Comps(i)
	if len(comps) != len(v.shape) {
		return 0, false
	}
	var offset int
	for d, c := range comps {
		if c < 0 || v.shape[d] <= c {
			return 0, false
		}
		offset += c * v.strides[d]
	}
	return offset, true
}
