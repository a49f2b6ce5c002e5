// Package omapvec adapts the wk8/go-ordered-map insertion-ordered map into
// an anyvec source. The key is a single coordinate component or the full
// composite coordinate; insertion order only matters to consumers that
// iterate the map directly, the access contract is unaffected by it.
package omapvec

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Map is a read-only view over an insertion-ordered map.
type Map[K comparable, V any] struct {
	m *orderedmap.OrderedMap[K, V]
}

// Of wraps an insertion-ordered map.
//
//	om := orderedmap.New[int, int]()
//	om.Set(1, 10)
//	v := omapvec.Of(om)
//	v.At(1) // 10, true
func Of[K comparable, V any](m *orderedmap.OrderedMap[K, V]) Map[K, V] {
	return Map[K, V]{m: m}
}

// At implements anyvec.Vec. A position is present when the key exists.
func (v Map[K, V]) At(k K) (V, bool) {
	if v.m == nil {
		var zero V
		return zero, false
	}
	return v.m.Get(k)
}
