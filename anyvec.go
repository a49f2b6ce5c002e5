// Package anyvec provides a uniform indexed-access abstraction over
// heterogeneous vector-like sources.
//
// # Summary
//
// An algorithm that reads values by position often does not care how those
// values are stored. Demands of a flow network can sit in a slice, in a
// sparse map, be the same number for every node, or be computed on the fly.
// anyvec lets such an algorithm be written once against the Vec contract
// and be instantiated over any concrete backing representation.
// Dispatch happens at compile time through generics,
// so the abstraction carries no runtime reflection cost.
//
// A lookup has exactly two outcomes: the value is present, or it is absent.
// Absence is an expected result communicated comma-ok style,
// never an error and never a crash.
//
// The dimensionality of a source is carried by its index type:
// int addresses one-dimensional sources, [2]int through [4]int the higher
// dimensions. See the index package for the supported shapes and their
// conversions.
package anyvec

import "go.llib.dev/anyvec/index"

// Index is the constraint for the supported index shapes.
type Index = index.Any

// Vec is the value-access contract of a vector-like source.
//
// At reports the element stored at the given index, or absence when the
// position is empty. The source is only read; implementations must not
// mutate state on lookup. Element values are returned by copy,
// so the contract suits cheaply copyable element types.
// For the borrowing variant see RefVec.
//
// A new container type becomes usable by every generic consumer of this
// library by implementing this single method; the derived iteration and the
// recursive composition come for free.
type Vec[I Index, T any] interface {
	At(index I) (T, bool)
}

// RefVec is the reference-access contract of a vector-like source.
//
// RefAt reports a pointer to the element stored at the given index, or
// absence when the position is empty. The pointee is owned by the source
// and stays valid as long as the source does; callers must not assume it
// outlives the source. RefVec exists for element types that are not
// cheaply copyable.
//
// Vec and RefVec are independent capabilities.
// A type may implement one, the other, or both.
type RefVec[I Index, T any] interface {
	RefAt(index I) (*T, bool)
}
