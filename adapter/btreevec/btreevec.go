// Package btreevec adapts the tidwall/btree ordered map into a
// one-dimensional anyvec source keyed by a coordinate component.
// Use it when the populated positions must also stay iterable in key order
// outside of the access contract.
package btreevec

import "github.com/tidwall/btree"

// Map is a read-only view over a btree.Map keyed by position.
type Map[V any] struct {
	m *btree.Map[int, V]
}

// Of wraps an ordered map.
//
//	var m btree.Map[int, string]
//	m.Set(1, "a")
//	v := btreevec.Of(&m)
//	v.At(1) // "a", true
//	v.At(0) // "", false
func Of[V any](m *btree.Map[int, V]) Map[V] {
	return Map[V]{m: m}
}

// At implements anyvec.Vec. A position is present when the key exists.
func (v Map[V]) At(i int) (V, bool) {
	if v.m == nil {
		var zero V
		return zero, false
	}
	return v.m.Get(i)
}
