package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyed(t *testing.T) {
	keyed := NewKeyed[PowerCategory]()
	melee := &PowerCategory{Name: NewNameKey("Melee")}
	pool := &PowerCategory{Name: NewNameKey("Pool")}
	keyed.Put(melee.Name, melee)
	keyed.Put(pool.Name, pool)

	found, ok := keyed.Get(NewNameKey("MELEE"))
	require.True(t, ok)
	assert.Same(t, melee, found)
	assert.Equal(t, []*PowerCategory{melee, pool}, keyed.Values())
	assert.Equal(t, []NameKey{melee.Name, pool.Name}, keyed.Keys())

	replaced := &PowerCategory{Name: NewNameKey("melee")}
	keyed.Put(replaced.Name, replaced)
	assert.Equal(t, 2, keyed.Len())
	found, _ = keyed.Get(NewNameKey("Melee"))
	assert.Same(t, replaced, found)

	removed := keyed.Retain(func(key NameKey, _ *PowerCategory) bool {
		return !key.PartialMatch("pool")
	})
	assert.Equal(t, 1, removed)
	_, ok = keyed.Get(pool.Name)
	assert.False(t, ok)
	assert.False(t, keyed.Delete(pool.Name))
}
