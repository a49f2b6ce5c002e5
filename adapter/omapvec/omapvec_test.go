package omapvec_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"go.llib.dev/anyvec"
	"go.llib.dev/anyvec/adapter/omapvec"
	"go.llib.dev/anyvec/index"
	"go.llib.dev/anyvec/veccontract"
)

var _ anyvec.Vec[int, string] = omapvec.Map[int, string]{}

func TestMap(t *testing.T) {
	om := orderedmap.New[int, int]()
	om.Set(2, 20)
	om.Set(1, 10)

	v := omapvec.Of(om)

	t.Run("present when the key exists", func(t *testing.T) {
		got, ok := v.At(1)
		require.True(t, ok)
		require.Equal(t, 10, got)
	})

	t.Run("absent when the key does not exist", func(t *testing.T) {
		_, ok := v.At(3)
		require.False(t, ok)
	})

	t.Run("composite coordinate keys", func(t *testing.T) {
		om := orderedmap.New[[2]int, int]()
		om.Set(index.Of2(0, 1), 14)

		v := omapvec.Of(om)
		got, ok := v.At(index.Of2(0, 1))
		require.True(t, ok)
		require.Equal(t, 14, got)

		_, ok = v.At(index.Of2(1, 0))
		require.False(t, ok)
	})

	t.Run("zero value adapter is absent everywhere", func(t *testing.T) {
		var zero omapvec.Map[int, int]
		_, ok := zero.At(1)
		require.False(t, ok)
	})
}

func TestMap_contract(t *testing.T) {
	veccontract.Vec(func(testing.TB) veccontract.Subject[int, int] {
		om := orderedmap.New[int, int]()
		om.Set(1, 10)
		return veccontract.Subject[int, int]{
			Vec:          omapvec.Of(om),
			PresentIndex: 1,
			PresentValue: 10,
			AbsentIndex:  0,
		}
	}).Test(t)
}
