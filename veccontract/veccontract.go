// Package veccontract provides the behavioral suite of the anyvec access
// contracts. It is the extension contract made executable:
// an adapter author implements At or RefAt for a new container type,
// then runs this suite against a populated instance to verify the
// presence, absence and iteration-order expectations every generic
// consumer of the library relies on.
package veccontract

import (
	"slices"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/anyvec"
)

// Subject describes a value-access source under test.
type Subject[I anyvec.Index, T any] struct {
	// Vec is the source being verified.
	Vec anyvec.Vec[I, T]
	// PresentIndex is an index that is populated in Vec.
	PresentIndex I
	// PresentValue is the value stored at PresentIndex.
	PresentValue T
	// AbsentIndex is an index that has no value in Vec.
	AbsentIndex I
}

// Vec validates that a source honors the value-access contract.
func Vec[I anyvec.Index, T any](mk contract.Make[Subject[I, T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[I, T] {
		return mk(t)
	})

	s.Then("a populated index is present with the stored value", func(t *testcase.T) {
		sub := subject.Get(t)
		got, ok := sub.Vec.At(sub.PresentIndex)
		assert.True(t, ok)
		assert.Equal(t, sub.PresentValue, got)
	})

	s.Then("an unpopulated index is absent, not defaulted", func(t *testcase.T) {
		sub := subject.Get(t)
		_, ok := sub.Vec.At(sub.AbsentIndex)
		assert.False(t, ok)
	})

	s.Then("lookups are repeatable without side effects", func(t *testcase.T) {
		sub := subject.Get(t)
		for range 3 {
			got, ok := sub.Vec.At(sub.PresentIndex)
			assert.True(t, ok)
			assert.Equal(t, sub.PresentValue, got)
		}
	})

	s.Then("iteration yields one result per index in input order", func(t *testcase.T) {
		sub := subject.Get(t)
		indices := []I{sub.PresentIndex, sub.AbsentIndex, sub.PresentIndex}

		var (
			values []T
			oks    []bool
		)
		for v, ok := range anyvec.IterOver(sub.Vec, slices.Values(indices)) {
			values = append(values, v)
			oks = append(oks, ok)
		}

		assert.Equal(t, []bool{true, false, true}, oks)
		assert.Equal(t, 3, len(values))
		assert.Equal(t, sub.PresentValue, values[0])
		assert.Equal(t, sub.PresentValue, values[2])
	})

	return s.AsSuite("Vec")
}

// RefSubject describes a reference-access source under test.
type RefSubject[I anyvec.Index, T any] struct {
	// Vec is the source being verified.
	Vec anyvec.RefVec[I, T]
	// PresentIndex is an index that is populated in Vec.
	PresentIndex I
	// PresentValue is the value stored at PresentIndex.
	PresentValue T
	// AbsentIndex is an index that has no value in Vec.
	AbsentIndex I
}

// RefVec validates that a source honors the reference-access contract.
func RefVec[I anyvec.Index, T any](mk contract.Make[RefSubject[I, T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) RefSubject[I, T] {
		return mk(t)
	})

	s.Then("a populated index is present and the borrow points at the stored value", func(t *testcase.T) {
		sub := subject.Get(t)
		ptr, ok := sub.Vec.RefAt(sub.PresentIndex)
		assert.True(t, ok)
		assert.NotNil(t, ptr)
		assert.Equal(t, sub.PresentValue, *ptr)
	})

	s.Then("lookups are repeatable without side effects", func(t *testcase.T) {
		sub := subject.Get(t)
		for range 3 {
			ptr, ok := sub.Vec.RefAt(sub.PresentIndex)
			assert.True(t, ok)
			assert.Equal(t, sub.PresentValue, *ptr)
		}
	})

	s.Then("an unpopulated index is absent", func(t *testcase.T) {
		sub := subject.Get(t)
		_, ok := sub.Vec.RefAt(sub.AbsentIndex)
		assert.False(t, ok)
	})

	s.Then("iteration yields one result per index in input order", func(t *testcase.T) {
		sub := subject.Get(t)
		indices := []I{sub.AbsentIndex, sub.PresentIndex}

		var oks []bool
		for ptr, ok := range anyvec.RefIterOver(sub.Vec, slices.Values(indices)) {
			if ok {
				assert.Equal(t, sub.PresentValue, *ptr)
			}
			oks = append(oks, ok)
		}

		assert.Equal(t, []bool{false, true}, oks)
	})

	return s.AsSuite("RefVec")
}
