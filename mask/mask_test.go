package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("simple builtins", func(t *testing.T) {
		ops, err := Parse("?d?d", 128)
		require.NoError(t, err)
		assert.Equal(t, []Op{
			{Kind: OpBuiltinCharset, Byte: 'd'},
			{Kind: OpBuiltinCharset, Byte: 'd'},
		}, ops)
	})

	t.Run("mixed mask", func(t *testing.T) {
		ops, err := Parse(`a ?ld?1?2?w2b\?a?w1`, 128)
		require.NoError(t, err)
		assert.Equal(t, []Op{
			{Kind: OpLiteral, Byte: 'a'},
			{Kind: OpLiteral, Byte: ' '},
			{Kind: OpBuiltinCharset, Byte: 'l'},
			{Kind: OpLiteral, Byte: 'd'},
			{Kind: OpCustomCharset, Index: 0},
			{Kind: OpCustomCharset, Index: 1},
			{Kind: OpWordlist, Index: 1},
			{Kind: OpLiteral, Byte: 'b'},
			{Kind: OpLiteral, Byte: '?'},
			{Kind: OpLiteral, Byte: 'a'},
			{Kind: OpWordlist, Index: 0},
		}, ops)
	})

	t.Run("invalid masks", func(t *testing.T) {
		for _, m := range []string{"", "?", "?x", "?w", "?w0"} {
			_, err := Parse(m, 128)
			assert.Error(t, err, "mask %q should be invalid", m)
		}
	})

	t.Run("exceeds max tokens", func(t *testing.T) {
		_, err := Parse("?d?d?d", 2)
		assert.ErrorIs(t, err, ErrInvalidMask)
	})
}

func TestValidateCustomCharsets(t *testing.T) {
	ops, err := Parse("?1?2", 128)
	require.NoError(t, err)

	assert.NoError(t, ValidateCustomCharsets(ops, 2))

	err = ValidateCustomCharsets(ops, 1)
	require.ErrorIs(t, err, ErrCustomCharsetRef)
	assert.Contains(t, err.Error(), "?2")
	assert.Contains(t, err.Error(), "only 1 custom charsets defined")
}

func TestValidateWordlists(t *testing.T) {
	ops, err := Parse("?w1?w3", 128)
	require.NoError(t, err)

	assert.NoError(t, ValidateWordlists(ops, 3))

	err = ValidateWordlists(ops, 2)
	require.ErrorIs(t, err, ErrWordlistRef)
	assert.Contains(t, err.Error(), "?w3")
}

func TestHasWordlist(t *testing.T) {
	ops, err := Parse("?d?d", 128)
	require.NoError(t, err)
	assert.False(t, HasWordlist(ops))

	ops, err = Parse("?d?w1", 128)
	require.NoError(t, err)
	assert.True(t, HasWordlist(ops))
}
