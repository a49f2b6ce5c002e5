package anyvec

import "iter"

// IterOver replays the value-access contract over a sequence of indices.
// For each index pulled from indices, it yields the result of exactly one
// At call, in the same order, one result per index. Nothing is prefetched
// or buffered; stopping early stops the lookups too.
//
// The returned sequence is restartable iff indices is restartable.
// With a single-use indices sequence, treat the result as single-use.
func IterOver[I Index, T any](v Vec[I, T], indices iter.Seq[I]) iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		for idx := range indices {
			if !yield(v.At(idx)) {
				return
			}
		}
	}
}

// RefIterOver is the reference-access variant of IterOver.
// Each yielded pointer is valid for as long as the source is.
func RefIterOver[I Index, T any](v RefVec[I, T], indices iter.Seq[I]) iter.Seq2[*T, bool] {
	return func(yield func(*T, bool) bool) {
		for idx := range indices {
			if !yield(v.RefAt(idx)) {
				return
			}
		}
	}
}

// Present narrows a lookup-result sequence down to the values that were found.
// Together with IterOver it expresses "sum whatever exists at these positions"
// style consumption without branching at the call site.
func Present[T any](results iter.Seq2[T, bool]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := range results {
			if ok && !yield(v) {
				return
			}
		}
	}
}

// Iterate returns a pull-style cursor over the lookup results,
// for consumers that prefer explicit stepping over range-over-func.
//
// The cursor is single-pass: each Next consumes one index from the
// sequence and performs one At call; once the sequence is exhausted the
// cursor stays exhausted. Recreate it from the source and a fresh index
// sequence to start over.
func Iterate[I Index, T any](v Vec[I, T], indices iter.Seq[I]) *Iterator[I, T] {
	next, stop := iter.Pull(indices)
	return &Iterator[I, T]{vec: v, next: next, stop: stop}
}

// Iterator is a single-pass pull cursor over lookup results.
// Use Iterate to create one.
type Iterator[I Index, T any] struct {
	vec  Vec[I, T]
	next func() (I, bool)
	stop func()

	value T
	ok    bool
	done  bool
}

// Next advances the cursor by consuming one index and performing one lookup.
// It reports false once the index sequence is exhausted or the iterator is closed.
func (i *Iterator[I, T]) Next() bool {
	if i.done {
		return false
	}
	idx, more := i.next()
	if !more {
		i.done = true
		i.stop()
		return false
	}
	i.value, i.ok = i.vec.At(idx)
	return true
}

// Value returns the result of the lookup made by the last successful Next.
// It is repeatable without side effects.
func (i *Iterator[I, T]) Value() (T, bool) {
	return i.value, i.ok
}

// Close releases the index sequence early. It is idempotent,
// and calling it is optional for fully consumed iterators.
func (i *Iterator[I, T]) Close() error {
	i.done = true
	i.stop()
	return nil
}

// RefIterate is the reference-access variant of Iterate.
func RefIterate[I Index, T any](v RefVec[I, T], indices iter.Seq[I]) *RefIterator[I, T] {
	next, stop := iter.Pull(indices)
	return &RefIterator[I, T]{vec: v, next: next, stop: stop}
}

// RefIterator is a single-pass pull cursor over reference lookup results.
// Use RefIterate to create one.
type RefIterator[I Index, T any] struct {
	vec  RefVec[I, T]
	next func() (I, bool)
	stop func()

	value *T
	ok    bool
	done  bool
}

// Next advances the cursor by consuming one index and performing one lookup.
func (i *RefIterator[I, T]) Next() bool {
	if i.done {
		return false
	}
	idx, more := i.next()
	if !more {
		i.done = true
		i.stop()
		return false
	}
	i.value, i.ok = i.vec.RefAt(idx)
	return true
}

// Value returns the result of the lookup made by the last successful Next.
func (i *RefIterator[I, T]) Value() (*T, bool) {
	return i.value, i.ok
}

// Close releases the index sequence early. It is idempotent.
func (i *RefIterator[I, T]) Close() error {
	i.done = true
	i.stop()
	return nil
}
