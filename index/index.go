// Package index defines the coordinate shapes understood by the anyvec
// access contracts, and the conversions between them.
//
// A coordinate is a fixed-length sequence of non-negative ints whose length
// is the dimensionality of the source. Callers express it in whatever shape
// is natural: a bare int for one dimension, a fixed array for any dimension.
// Every conversion in this package is total; an unsupported shape is a
// compile-time error, never a runtime one.
package index

// Any is the set of supported index shapes.
//
// A bare int and [1]int both address one-dimensional sources,
// [2]int through [4]int address the higher dimensions.
type Any interface {
	int | [1]int | [2]int | [3]int | [4]int
}

// Of2 makes a two dimensional index from its components.
func Of2(i, j int) [2]int { return [2]int{i, j} }

// Of3 makes a three dimensional index from its components.
func Of3(i, j, k int) [3]int { return [3]int{i, j, k} }

// Of4 makes a four dimensional index from its components.
func Of4(i, j, k, l int) [4]int { return [4]int{i, j, k, l} }

// Split2 splits a two dimensional index into its head component and the remaining one dimensional index.
func Split2(ij [2]int) (int, int) { return ij[0], ij[1] }

// Split3 splits a three dimensional index into its head component and the remaining two dimensional index.
func Split3(ijk [3]int) (int, [2]int) { return ijk[0], [2]int{ijk[1], ijk[2]} }

// Split4 splits a four dimensional index into its head component and the remaining three dimensional index.
func Split4(ijkl [4]int) (int, [3]int) { return ijkl[0], [3]int{ijkl[1], ijkl[2], ijkl[3]} }

// Join2 is the inverse of Split2.
func Join2(head, tail int) [2]int { return [2]int{head, tail} }

// Join3 is the inverse of Split3.
func Join3(head int, tail [2]int) [3]int { return [3]int{head, tail[0], tail[1]} }

// Join4 is the inverse of Split4.
func Join4(head int, tail [3]int) [4]int { return [4]int{head, tail[0], tail[1], tail[2]} }

// Comps returns the components of an index regardless of its shape.
// It allows rank generic code to treat all supported shapes uniformly.
func Comps[I Any](i I) []int {
	switch v := any(i).(type) {
	case int:
		return []int{v}
	case [1]int:
		return []int{v[0]}
	case [2]int:
		return []int{v[0], v[1]}
	case [3]int:
		return []int{v[0], v[1], v[2]}
	case [4]int:
		return []int{v[0], v[1], v[2], v[3]}
	default:
		panic("unexpected")
	}
}
