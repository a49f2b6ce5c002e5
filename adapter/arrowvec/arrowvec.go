// Package arrowvec adapts Apache Arrow arrays into one-dimensional anyvec
// sources. Arrow's validity bitmap maps directly onto the presence/absence
// contract: a null slot is an absent position, not a zero value.
package arrowvec

// TypedArray is the part of an Arrow typed array the adapter reads.
// All concrete typed arrays of the arrow/array package satisfy it,
// e.g. *array.Int64 with T = int64 or *array.String with T = string.
type TypedArray[T any] interface {
	Len() int
	IsValid(i int) bool
	Value(i int) T
}

// Array is a read-only view over an Arrow typed array.
// It does not retain or release the array; the caller keeps ownership of
// the Arrow buffers and their reference counts.
type Array[T any] struct {
	arr TypedArray[T]
}

// Of wraps an Arrow typed array.
//
//	b := array.NewInt64Builder(memory.NewGoAllocator())
//	b.AppendValues([]int64{10, 11}, nil)
//	b.AppendNull()
//	arr := b.NewInt64Array()
//	defer arr.Release()
//
//	v := arrowvec.Of[int64](arr)
//	v.At(1) // 11, true
//	v.At(2) // 0, false: null slot
func Of[T any](arr TypedArray[T]) Array[T] {
	return Array[T]{arr: arr}
}

// At implements anyvec.Vec. A position is present when it is within the
// array's length and its slot is valid.
func (v Array[T]) At(i int) (T, bool) {
	if v.arr == nil || i < 0 || v.arr.Len() <= i || !v.arr.IsValid(i) {
		var zero T
		return zero, false
	}
	return v.arr.Value(i), true
}
