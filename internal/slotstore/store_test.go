package slotstore_test

import (
	"testing"

	"github.com/loyston500/micron/internal/slotstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Store_basic(t *testing.T) {
	s := slotstore.New[int]()

	_, ok := s.Get(42)
	assert.False(t, ok, "unset key should report ok=false")

	require.NoError(t, s.Set(42, 9))
	v, ok := s.Get(42)
	require.True(t, ok)
	assert.Equal(t, 9, v)

	require.NoError(t, s.Set(-6969, -1))
	v, ok = s.Get(-6969)
	require.True(t, ok)
	assert.Equal(t, -1, v)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{-6969, 42}, s.Keys())
}

func Test_Store_FirstUnset(t *testing.T) {
	s := slotstore.New[int]()

	k, ok := s.FirstUnset()
	require.True(t, ok)
	assert.Equal(t, 0, k)

	require.NoError(t, s.Set(0, 1))
	require.NoError(t, s.Set(1, 1))
	require.NoError(t, s.Set(2, 1))

	k, ok = s.FirstUnset()
	require.True(t, ok)
	assert.Equal(t, 3, k)

	require.NoError(t, s.Set(4, 1))
	k, ok = s.FirstUnset()
	require.True(t, ok)
	assert.Equal(t, 3, k, "should not skip the gap at 3")
}

func Test_Store_Limit(t *testing.T) {
	s := slotstore.New[int]()
	s.Limit = 2

	require.NoError(t, s.Set(0, 1))
	require.NoError(t, s.Set(1, 1))
	// overwriting an existing key never counts against the limit
	require.NoError(t, s.Set(0, 2))

	err := s.Set(2, 1)
	require.Error(t, err)
	var limErr slotstore.LimitError
	require.ErrorAs(t, err, &limErr)
	assert.Equal(t, 2, limErr.Key)
}
