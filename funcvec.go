package anyvec

import "go.llib.dev/anyvec/index"

// Func adapts a plain function into a computed source.
// The function itself decides presence; whatever it reports is the lookup
// result. Closures allow capturing state without defining a new type.
type Func[I Index, T any] func(I) (T, bool)

// At implements Vec by invoking the function.
func (fn Func[I, T]) At(i I) (T, bool) { return fn(i) }

// RefFunc is the reference-returning variant of Func.
type RefFunc[I Index, T any] func(I) (*T, bool)

// RefAt implements RefVec by invoking the function.
func (fn RefFunc[I, T]) RefAt(i I) (*T, bool) { return fn(i) }

// Func1 wraps a function with a natural one-dimensional signature.
func Func1[T any](fn func(i int) (T, bool)) Func[int, T] {
	return fn
}

// Func2 wraps a function with a natural two-dimensional signature,
// taking care of the index conversion.
//
//	diag := anyvec.Func2(func(i, j int) (int, bool) { return 1, i == j })
func Func2[T any](fn func(i, j int) (T, bool)) Func[[2]int, T] {
	return func(ij [2]int) (T, bool) {
		i, j := index.Split2(ij)
		return fn(i, j)
	}
}

// Func3 wraps a function with a natural three-dimensional signature.
func Func3[T any](fn func(i, j, k int) (T, bool)) Func[[3]int, T] {
	return func(ijk [3]int) (T, bool) {
		return fn(ijk[0], ijk[1], ijk[2])
	}
}

// Func4 wraps a function with a natural four-dimensional signature.
func Func4[T any](fn func(i, j, k, l int) (T, bool)) Func[[4]int, T] {
	return func(ijkl [4]int) (T, bool) {
		return fn(ijkl[0], ijkl[1], ijkl[2], ijkl[3])
	}
}

// RefFunc1 wraps a reference-returning function with a natural one-dimensional signature.
func RefFunc1[T any](fn func(i int) (*T, bool)) RefFunc[int, T] {
	return fn
}

// RefFunc2 wraps a reference-returning function with a natural two-dimensional signature.
func RefFunc2[T any](fn func(i, j int) (*T, bool)) RefFunc[[2]int, T] {
	return func(ij [2]int) (*T, bool) {
		i, j := index.Split2(ij)
		return fn(i, j)
	}
}

// RefFunc3 wraps a reference-returning function with a natural three-dimensional signature.
func RefFunc3[T any](fn func(i, j, k int) (*T, bool)) RefFunc[[3]int, T] {
	return func(ijk [3]int) (*T, bool) {
		return fn(ijk[0], ijk[1], ijk[2])
	}
}

// RefFunc4 wraps a reference-returning function with a natural four-dimensional signature.
func RefFunc4[T any](fn func(i, j, k, l int) (*T, bool)) RefFunc[[4]int, T] {
	return func(ijkl [4]int) (*T, bool) {
		return fn(ijkl[0], ijkl[1], ijkl[2], ijkl[3])
	}
}
