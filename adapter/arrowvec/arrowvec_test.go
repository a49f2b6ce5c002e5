package arrowvec_test

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"

	"go.llib.dev/anyvec"
	"go.llib.dev/anyvec/adapter/arrowvec"
	"go.llib.dev/anyvec/veccontract"
)

var _ anyvec.Vec[int, int64] = arrowvec.Array[int64]{}

func TestArray(t *testing.T) {
	pool := memory.NewGoAllocator()

	b := array.NewInt64Builder(pool)
	defer b.Release()
	b.AppendValues([]int64{10, 11}, nil)
	b.AppendNull()
	b.Append(13)
	arr := b.NewInt64Array()
	defer arr.Release()

	v := arrowvec.Of[int64](arr)

	t.Run("present within length", func(t *testing.T) {
		got, ok := v.At(1)
		require.True(t, ok)
		require.Equal(t, int64(11), got)
	})

	t.Run("null slot is absent, not zero", func(t *testing.T) {
		got, ok := v.At(2)
		require.False(t, ok)
		require.Zero(t, got)
	})

	t.Run("absent past the length", func(t *testing.T) {
		_, ok := v.At(4)
		require.False(t, ok)

		_, ok = v.At(-1)
		require.False(t, ok)
	})

	t.Run("string arrays work the same way", func(t *testing.T) {
		sb := array.NewStringBuilder(pool)
		defer sb.Release()
		sb.AppendValues([]string{"a", "b"}, nil)
		sarr := sb.NewStringArray()
		defer sarr.Release()

		sv := arrowvec.Of[string](sarr)
		got, ok := sv.At(0)
		require.True(t, ok)
		require.Equal(t, "a", got)
	})

	t.Run("zero value adapter is absent everywhere", func(t *testing.T) {
		var zero arrowvec.Array[int64]
		_, ok := zero.At(0)
		require.False(t, ok)
	})
}

func TestArray_contract(t *testing.T) {
	pool := memory.NewGoAllocator()

	b := array.NewFloat64Builder(pool)
	defer b.Release()
	b.AppendValues([]float64{1.5, 2.5}, nil)
	arr := b.NewFloat64Array()
	defer arr.Release()

	veccontract.Vec(func(testing.TB) veccontract.Subject[int, float64] {
		return veccontract.Subject[int, float64]{
			Vec:          arrowvec.Of[float64](arr),
			PresentIndex: 1,
			PresentValue: 2.5,
			AbsentIndex:  2,
		}
	}).Test(t)
}
