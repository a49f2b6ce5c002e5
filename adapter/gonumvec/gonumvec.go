// Package gonumvec adapts gonum matrices into two-dimensional anyvec
// sources. Gonum's mat.Matrix panics on out-of-range access;
// the adapter turns out-of-shape coordinates into absence instead,
// per the access contract.
package gonumvec

import (
	"gonum.org/v1/gonum/mat"

	"go.llib.dev/anyvec/index"
)

// Matrix is a read-only view over a mat.Matrix.
type Matrix struct {
	m mat.Matrix
}

// Of wraps a matrix.
//
//	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	v := gonumvec.Of(m)
//	v.At(index.Of2(1, 2)) // 6, true
//	v.At(index.Of2(2, 0)) // 0, false
func Of(m mat.Matrix) Matrix {
	return Matrix{m: m}
}

// At implements anyvec.Vec. A coordinate is present when it falls within
// the matrix dimensions.
func (v Matrix) At(ij [2]int) (float64, bool) {
	if v.m == nil {
		return 0, false
	}
	i, j := index.Split2(ij)
	r, c := v.m.Dims()
	if i < 0 || r <= i || j < 0 || c <= j {
		return 0, false
	}
	return v.m.At(i, j), true
}
