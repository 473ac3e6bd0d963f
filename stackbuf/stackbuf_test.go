package stackbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackBuf(t *testing.T) {
	b := New(16)
	assert.Equal(t, 16, b.Len())
	assert.Equal(t, 0, b.Pos())
	assert.Empty(t, b.Data())

	b.Write([]byte("abc"))
	assert.Equal(t, 3, b.Pos())
	assert.Equal(t, []byte("abc"), b.Data())

	b.Write([]byte("de"))
	assert.Equal(t, []byte("abcde"), b.Data())

	b.Clear()
	assert.Equal(t, 0, b.Pos())
	assert.Empty(t, b.Data())
}

func TestDefaultCapacity(t *testing.T) {
	b := New(DefaultCapacity)
	assert.Equal(t, DefaultCapacity, b.Len())
}
