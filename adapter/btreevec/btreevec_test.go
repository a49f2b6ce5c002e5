package btreevec_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/btree"

	"go.llib.dev/anyvec"
	"go.llib.dev/anyvec/adapter/btreevec"
	"go.llib.dev/anyvec/veccontract"
)

var _ anyvec.Vec[int, string] = btreevec.Map[string]{}

func TestMap(t *testing.T) {
	var m btree.Map[int, int]
	m.Set(1, 10)
	m.Set(2, 20)

	v := btreevec.Of(&m)

	t.Run("present when the key exists", func(t *testing.T) {
		got, ok := v.At(1)
		require.True(t, ok)
		require.Equal(t, 10, got)
	})

	t.Run("absent when the key does not exist", func(t *testing.T) {
		got, ok := v.At(0)
		require.False(t, ok)
		require.Zero(t, got)
	})

	t.Run("zero value adapter is absent everywhere", func(t *testing.T) {
		var zero btreevec.Map[int]
		_, ok := zero.At(1)
		require.False(t, ok)
	})
}

func TestMap_contract(t *testing.T) {
	veccontract.Vec(func(testing.TB) veccontract.Subject[int, int] {
		var m btree.Map[int, int]
		m.Set(1, 10)
		m.Set(2, 20)
		return veccontract.Subject[int, int]{
			Vec:          btreevec.Of(&m),
			PresentIndex: 2,
			PresentValue: 20,
			AbsentIndex:  3,
		}
	}).Test(t)
}
