package anyvec

import "go.llib.dev/anyvec/index"

// Nested2 builds a two-dimensional source out of a one-dimensional source
// of one-dimensional sub-sources. The index splits into a head component,
// looked up in the outer source, and a tail index delegated to the
// retrieved sub-source. An outer miss short-circuits:
// the sub-source is never consulted.
//
// The outer and inner containers are independent,
// so a slice of maps, a map of slices, or any other mix composes the same way.
type Nested2[T any, S Vec[int, T]] struct {
	outer Vec[int, S]
}

// Compose2 makes a two-dimensional source from a one-dimensional source of sub-sources.
//
//	rows := anyvec.Slice[anyvec.Map[int, int]]{{7: 20}}
//	m := anyvec.Compose2[int, anyvec.Map[int, int]](rows)
//	m.At(index.Of2(0, 7)) // 20, true
func Compose2[T any, S Vec[int, T]](outer Vec[int, S]) Nested2[T, S] {
	return Nested2[T, S]{outer: outer}
}

// At implements Vec.
func (n Nested2[T, S]) At(ij [2]int) (T, bool) {
	i, j := index.Split2(ij)
	sub, ok := n.outer.At(i)
	if !ok {
		var zero T
		return zero, false
	}
	return sub.At(j)
}

// Nested3 builds a three-dimensional source out of a one-dimensional source
// of two-dimensional sub-sources. Same splitting rule as Nested2.
type Nested3[T any, S Vec[[2]int, T]] struct {
	outer Vec[int, S]
}

// Compose3 makes a three-dimensional source from a one-dimensional source of sub-sources.
func Compose3[T any, S Vec[[2]int, T]](outer Vec[int, S]) Nested3[T, S] {
	return Nested3[T, S]{outer: outer}
}

// At implements Vec.
func (n Nested3[T, S]) At(ijk [3]int) (T, bool) {
	i, jk := index.Split3(ijk)
	sub, ok := n.outer.At(i)
	if !ok {
		var zero T
		return zero, false
	}
	return sub.At(jk)
}

// Nested4 builds a four-dimensional source out of a one-dimensional source
// of three-dimensional sub-sources. Same splitting rule as Nested2.
type Nested4[T any, S Vec[[3]int, T]] struct {
	outer Vec[int, S]
}

// Compose4 makes a four-dimensional source from a one-dimensional source of sub-sources.
func Compose4[T any, S Vec[[3]int, T]](outer Vec[int, S]) Nested4[T, S] {
	return Nested4[T, S]{outer: outer}
}

// At implements Vec.
func (n Nested4[T, S]) At(ijkl [4]int) (T, bool) {
	i, jkl := index.Split4(ijkl)
	sub, ok := n.outer.At(i)
	if !ok {
		var zero T
		return zero, false
	}
	return sub.At(jkl)
}

// RefNested2 is the reference-access variant of Nested2.
// The outer level is still a value lookup; only the innermost element is borrowed.
type RefNested2[T any, S RefVec[int, T]] struct {
	outer Vec[int, S]
}

// RefCompose2 makes a reference-access two-dimensional source from a
// one-dimensional source of reference-access sub-sources.
func RefCompose2[T any, S RefVec[int, T]](outer Vec[int, S]) RefNested2[T, S] {
	return RefNested2[T, S]{outer: outer}
}

// RefAt implements RefVec.
func (n RefNested2[T, S]) RefAt(ij [2]int) (*T, bool) {
	i, j := index.Split2(ij)
	sub, ok := n.outer.At(i)
	if !ok {
		return nil, false
	}
	return sub.RefAt(j)
}

// RefNested3 is the reference-access variant of Nested3.
type RefNested3[T any, S RefVec[[2]int, T]] struct {
	outer Vec[int, S]
}

// RefCompose3 makes a reference-access three-dimensional source.
func RefCompose3[T any, S RefVec[[2]int, T]](outer Vec[int, S]) RefNested3[T, S] {
	return RefNested3[T, S]{outer: outer}
}

// RefAt implements RefVec.
func (n RefNested3[T, S]) RefAt(ijk [3]int) (*T, bool) {
	i, jk := index.Split3(ijk)
	sub, ok := n.outer.At(i)
	if !ok {
		return nil, false
	}
	return sub.RefAt(jk)
}

// RefNested4 is the reference-access variant of Nested4.
type RefNested4[T any, S RefVec[[3]int, T]] struct {
	outer Vec[int, S]
}

// RefCompose4 makes a reference-access four-dimensional source.
func RefCompose4[T any, S RefVec[[3]int, T]](outer Vec[int, S]) RefNested4[T, S] {
	return RefNested4[T, S]{outer: outer}
}

// RefAt implements RefVec.
func (n RefNested4[T, S]) RefAt(ijkl [4]int) (*T, bool) {
	i, jkl := index.Split4(ijkl)
	sub, ok := n.outer.At(i)
	if !ok {
		return nil, false
	}
	return sub.RefAt(jkl)
}
