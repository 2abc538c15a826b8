package idgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_RoundTrip(t *testing.T) {
	enc, err := NewEncoder("knowledge-base")
	require.NoError(t, err)

	for _, key := range []int64{0, 1, 42, 1000, 987654321} {
		id, err := enc.EncodeArticle(key)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(id), minLength)

		decoded, err := enc.DecodeArticle(id)
		require.NoError(t, err)
		assert.Equal(t, key, decoded)
	}
}

func TestEncoder_SaltChangesIDs(t *testing.T) {
	plain, err := NewEncoder("")
	require.NoError(t, err)
	salted, err := NewEncoder("another-salt")
	require.NoError(t, err)

	a, err := plain.EncodeArticle(1000)
	require.NoError(t, err)
	b, err := salted.EncodeArticle(1000)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestEncoder_SameSaltIsStable(t *testing.T) {
	first, err := NewEncoder("stable")
	require.NoError(t, err)
	second, err := NewEncoder("stable")
	require.NoError(t, err)

	a, _ := first.EncodeArticle(77)
	b, _ := second.EncodeArticle(77)
	assert.Equal(t, a, b)
}

func TestEncoder_RejectsInvalid(t *testing.T) {
	enc, err := NewEncoder("")
	require.NoError(t, err)

	_, err = enc.EncodeArticle(-1)
	assert.True(t, errors.Is(err, ErrInvalidID))

	_, err = enc.DecodeArticle("")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = enc.DecodeArticle("!!!")
	assert.ErrorIs(t, err, ErrInvalidID)
}
