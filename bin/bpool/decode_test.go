package bpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powers-dict/bin/berr"
	"powers-dict/bin/lbytes"
)

func TestStringPool_Get(t *testing.T) {
	encoder := lbytes.NewEncoder()
	offsets := Encode(encoder, "Melee", "Melee.Punching")
	encoder.U32(42)

	reader := lbytes.NewBytesReader(encoder.Bytes())
	pool, err := Decode(reader)
	require.NoError(t, err)

	// 1 + 6 + 15 = 22 bytes, padded to 24
	assert.Equal(t, 22, pool.Len())
	assert.Equal(t, []uint32{1, 7}, offsets)

	s, ok := pool.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "Melee", s)

	s, ok = pool.Get(7)
	assert.True(t, ok)
	assert.Equal(t, "Melee.Punching", s)

	// the middle of a string is a valid offset too
	s, ok = pool.Get(13)
	assert.True(t, ok)
	assert.Equal(t, "Punching", s)

	_, ok = pool.Get(0)
	assert.False(t, ok)
	_, ok = pool.Get(22)
	assert.False(t, ok)
	_, ok = pool.Get(1 << 30)
	assert.False(t, ok)

	next, err := reader.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), next)
}

func TestStringPool_GetInvalidUTF8(t *testing.T) {
	pool := New([]byte{0, 0xff, 0xfe, 0, 'a', 0})

	_, ok := pool.Get(1)
	assert.False(t, ok)

	s, ok := pool.Get(4)
	assert.True(t, ok)
	assert.Equal(t, "a", s)
}

func TestDecode_Errors(t *testing.T) {
	bs := lbytes.NewEncoder().U32(4).Raw('a', 'b', 'c', 0).Bytes()
	_, err := Decode(lbytes.NewBytesReader(bs))
	kind, ok := berr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, berr.StringConversion, kind)

	bs = lbytes.NewEncoder().U32(5).Raw(0, 'a', 0).Bytes()
	_, err = Decode(lbytes.NewBytesReader(bs))
	kind, _ = berr.KindOf(err)
	assert.Equal(t, berr.ReadError, kind)

	pool, err := Decode(lbytes.NewBytesReader(lbytes.NewEncoder().U32(0).Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 0, pool.Len())
}
